package bill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/warikango/warikan/internal/bill/split"
)

// Service handles bill splitting business logic
type Service struct{}

// NewService creates a new bill service
func NewService() *Service {
	return &Service{}
}

// SplitBill validates the request, runs the split calculation and stamps
// the result with report metadata. The calculation itself is pure: it
// holds no state across calls and is safe to invoke concurrently.
func (s *Service) SplitBill(ctx context.Context, req *SplitRequest) (*Report, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	res := split.Calculate(toSplitBill(req.ToBill()))

	rep := &Report{
		ID:         uuid.NewString(),
		ComputedAt: time.Now().UTC(),
		Date:       res.Date,
		Location:   res.Location,
		SubTotal:   res.SubTotal,
		Tip:        res.Tip,
		Total:      res.Total,
		Shares:     make([]PersonShare, len(res.Shares)),
	}
	for i, sh := range res.Shares {
		rep.Shares[i] = PersonShare{Name: sh.Name, Amount: sh.Amount}
	}
	return rep, nil
}
