package download

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockExtractor is a testify mock of the download library
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) ExtractInfo(ctx context.Context, url string) (*Info, error) {
	args := m.Called(ctx, url)
	info, _ := args.Get(0).(*Info)
	return info, args.Error(1)
}

func (m *MockExtractor) Download(ctx context.Context, url string, cfg Config) (*Result, error) {
	args := m.Called(ctx, url, cfg)
	result, _ := args.Get(0).(*Result)
	return result, args.Error(1)
}

// fakeTools reports a fixed ffmpeg availability
type fakeTools bool

func (f fakeTools) HasFFmpeg() bool {
	return bool(f)
}
