package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/glean/internal/app"
	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports/mocks"
	"go.trai.ch/glean/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	store       *mocks.MockArtifactStore
	fingerprint *mocks.MockFingerprinter
	loader      *mocks.MockTableLoader
	logger      *mocks.MockLogger
}

func newTestComponents(ctrl *gomock.Controller) (*app.Components, *testMocks) {
	cfg := domain.DefaultConfig()
	m := &testMocks{
		store:       mocks.NewMockArtifactStore(ctrl),
		fingerprint: mocks.NewMockFingerprinter(ctrl),
		loader:      mocks.NewMockTableLoader(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
	}
	m.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	factory := pipeline.NewFactory(pipeline.Deps{
		Config:      cfg,
		Store:       m.store,
		Fingerprint: m.fingerprint,
		Loader:      m.loader,
		Sentiment:   mocks.NewMockSentimentScorer(ctrl),
		Entities:    mocks.NewMockEntityRecognizer(ctrl),
		Keywords:    mocks.NewMockKeywordRanker(ctrl),
		Readability: mocks.NewMockReadabilityScorer(ctrl),
		Logger:      m.logger,
	})

	return &app.Components{
		App:    app.New(cfg, factory, m.store, m.logger),
		Logger: m.logger,
		Config: cfg,
	}, m
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, _ := newTestComponents(ctrl)
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	components, m := newTestComponents(ctrl)

	// Simulate a failing table load.
	m.fingerprint.EXPECT().FileRef("missing.csv").Return("key")
	m.store.EXPECT().Get("key", domain.CategoryRawData, domain.StageRawTable, gomock.Any()).Return(false, nil)
	m.loader.EXPECT().Load("missing.csv").Return(nil, domain.ErrFileNotFound)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"run", "missing.csv"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
}
