package ui

import "fmt"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyVideoURL          = "video_url"
	KeyEnterURL          = "enter_url"
	KeyPaste             = "paste"
	KeyFetchInfo         = "fetch_info"
	KeyVideoInfo         = "video_info"
	KeyNoVideoLoaded     = "no_video_loaded"
	KeyDownloadOptions   = "download_options"
	KeyFormat            = "format"
	KeyResolution        = "resolution"
	KeyAudioFormat       = "audio_format"
	KeyContainer         = "container"
	KeySaveLocation      = "save_location"
	KeyBrowse            = "browse"
	KeyDownload          = "download"
	KeyDownloading       = "downloading"
	KeyShowInFolder      = "show_in_folder"
	KeyReady             = "ready"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyFetchingInfo      = "fetching_info"
	KeyInfoLoaded        = "info_loaded"
	KeyError             = "error"
	KeyDirectoryError    = "directory_error"
	KeyFFmpegRequired    = "ffmpeg_required"
	KeyFFmpegWarning     = "ffmpeg_warning"
	KeyDownloadFailed    = "download_failed"
	KeyDownloadCompleted = "download_completed"
	KeyPasteFailed       = "paste_failed"
	KeyErrorOpeningDir   = "error_opening_dir"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Format returns localized text for key with args substituted into its verbs
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Simple Downloader",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyVideoURL:          "Video URL",
		KeyEnterURL:          "Enter YouTube URL here...",
		KeyPaste:             "Paste",
		KeyFetchInfo:         "Fetch Info",
		KeyVideoInfo:         "Video Information",
		KeyNoVideoLoaded:     "No video loaded",
		KeyDownloadOptions:   "Download Options",
		KeyFormat:            "Format:",
		KeyResolution:        "Resolution:",
		KeyAudioFormat:       "Audio Format:",
		KeyContainer:         "Container:",
		KeySaveLocation:      "Save Location",
		KeyBrowse:            "Browse",
		KeyDownload:          "Download",
		KeyDownloading:       "Downloading...",
		KeyShowInFolder:      "Show in folder",
		KeyReady:             "Ready to download",
		KeyPleaseEnterURL:    "Please enter a URL",
		KeyFetchingInfo:      "Fetching video information...",
		KeyInfoLoaded:        "Video information loaded successfully",
		KeyError:             "Error: %s",
		KeyDirectoryError:    "Error creating directory: %s",
		KeyFFmpegRequired:    "Error: ffmpeg required for audio extraction",
		KeyFFmpegWarning:     "Warning: ffmpeg not found, merging may fail",
		KeyDownloadFailed:    "Download failed: %s",
		KeyDownloadCompleted: "Download completed successfully!",
		KeyPasteFailed:       "Clipboard is empty",
		KeyErrorOpeningDir:   "Error opening folder: %s",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Simple Downloader",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyVideoURL:          "Ссылка на видео",
		KeyEnterURL:          "Вставьте ссылку на YouTube...",
		KeyPaste:             "Вставить",
		KeyFetchInfo:         "Получить",
		KeyVideoInfo:         "Информация о видео",
		KeyNoVideoLoaded:     "Видео не загружено",
		KeyDownloadOptions:   "Параметры загрузки",
		KeyFormat:            "Формат:",
		KeyResolution:        "Разрешение:",
		KeyAudioFormat:       "Аудиоформат:",
		KeyContainer:         "Контейнер:",
		KeySaveLocation:      "Папка сохранения",
		KeyBrowse:            "Обзор",
		KeyDownload:          "Скачать",
		KeyDownloading:       "Загрузка...",
		KeyShowInFolder:      "Показать в папке",
		KeyReady:             "Готово к загрузке",
		KeyPleaseEnterURL:    "Пожалуйста, введите ссылку",
		KeyFetchingInfo:      "Получение информации о видео...",
		KeyInfoLoaded:        "Информация о видео загружена",
		KeyError:             "Ошибка: %s",
		KeyDirectoryError:    "Ошибка создания папки: %s",
		KeyFFmpegRequired:    "Ошибка: для извлечения аудио нужен ffmpeg",
		KeyFFmpegWarning:     "Внимание: ffmpeg не найден, объединение может не сработать",
		KeyDownloadFailed:    "Ошибка загрузки: %s",
		KeyDownloadCompleted: "Загрузка успешно завершена!",
		KeyPasteFailed:       "Буфер обмена пуст",
		KeyErrorOpeningDir:   "Ошибка открытия папки: %s",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Simple Downloader",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyVideoURL:          "URL do vídeo",
		KeyEnterURL:          "Cole a URL do YouTube aqui...",
		KeyPaste:             "Colar",
		KeyFetchInfo:         "Buscar info",
		KeyVideoInfo:         "Informações do vídeo",
		KeyNoVideoLoaded:     "Nenhum vídeo carregado",
		KeyDownloadOptions:   "Opções de download",
		KeyFormat:            "Formato:",
		KeyResolution:        "Resolução:",
		KeyAudioFormat:       "Formato de áudio:",
		KeyContainer:         "Contêiner:",
		KeySaveLocation:      "Local de salvamento",
		KeyBrowse:            "Procurar",
		KeyDownload:          "Baixar",
		KeyDownloading:       "Baixando...",
		KeyShowInFolder:      "Mostrar na pasta",
		KeyReady:             "Pronto para baixar",
		KeyPleaseEnterURL:    "Por favor, insira uma URL",
		KeyFetchingInfo:      "Buscando informações do vídeo...",
		KeyInfoLoaded:        "Informações do vídeo carregadas",
		KeyError:             "Erro: %s",
		KeyDirectoryError:    "Erro ao criar a pasta: %s",
		KeyFFmpegRequired:    "Erro: ffmpeg é necessário para extrair o áudio",
		KeyFFmpegWarning:     "Aviso: ffmpeg não encontrado, a mesclagem pode falhar",
		KeyDownloadFailed:    "Falha no download: %s",
		KeyDownloadCompleted: "Download concluído com sucesso!",
		KeyPasteFailed:       "A área de transferência está vazia",
		KeyErrorOpeningDir:   "Erro ao abrir a pasta: %s",
	}
}
