package mock

import (
	"context"

	"github.com/hqanh/vanban"
)

var _ vanban.ResultService = (*ResultService)(nil)

// ResultService is a mock implementation of vanban.ResultService.
type ResultService struct {
	SaveResultFn        func(ctx context.Context, seg *vanban.SegmentationResult, diff *vanban.DiffReport) error
	FindResultByDocIDFn func(ctx context.Context, docID string) (*vanban.SegmentationResult, *vanban.DiffReport, error)
	DeleteResultFn      func(ctx context.Context, docID string) error
	StatsFn             func(ctx context.Context) (*vanban.CorpusStats, error)
}

func (s *ResultService) SaveResult(ctx context.Context, seg *vanban.SegmentationResult, diff *vanban.DiffReport) error {
	return s.SaveResultFn(ctx, seg, diff)
}

func (s *ResultService) FindResultByDocID(ctx context.Context, docID string) (*vanban.SegmentationResult, *vanban.DiffReport, error) {
	return s.FindResultByDocIDFn(ctx, docID)
}

func (s *ResultService) DeleteResult(ctx context.Context, docID string) error {
	return s.DeleteResultFn(ctx, docID)
}

func (s *ResultService) Stats(ctx context.Context) (*vanban.CorpusStats, error) {
	return s.StatsFn(ctx)
}
