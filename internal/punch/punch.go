// Package punch applies the changes requested on the command line to a
// month's days.
package punch

import (
	"time"

	"github.com/golang-sql/civil"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Tiliavir/punch/internal/block"
	"github.com/Tiliavir/punch/internal/brf"
	"github.com/Tiliavir/punch/internal/errors"
	"github.com/Tiliavir/punch/internal/infer"
	"github.com/Tiliavir/punch/internal/model"
)

// Request describes the changes for one date.
type Request struct {
	Date civil.Date
	// Blocks are block specs as typed by the user, see infer.Block.
	Blocks []string
	// Remove subtracts Blocks instead of adding them.
	Remove bool
	// Comment replaces the day's comment when non-nil.
	Comment      *string
	ClearComment bool
	Now          time.Time
}

func (r Request) mutates() bool {
	return len(r.Blocks) > 0 || r.Comment != nil || r.ClearComment
}

// Apply selects the request's date in month and applies its changes in order:
// clear comment, set comment, then every block spec. Block specs are inferred
// against the day as changed by the specs before them. On error the month may
// be partially changed and must not be saved.
func Apply(month *model.Month, req Request, log logrus.FieldLogger) (*brf.Marks, error) {
	if req.Comment != nil {
		if err := brf.ValidateComment(*req.Comment); err != nil {
			return nil, err
		}
	}

	marks := &brf.Marks{}
	if !month.Contains(req.Date) {
		if req.mutates() {
			return nil, errors.InvalidCalendarf("%s is not in %s, select it with --day",
				req.Date.In(time.Local).Format(brf.DateLayout), month.Title())
		}
		return marks, nil
	}

	day := month.AddDay(req.Date)
	marks.Select(req.Date)

	if req.ClearComment {
		day.ClearComment()
		marks.Modify(req.Date)
	}
	if req.Comment != nil {
		day.SetComment(*req.Comment)
		marks.Modify(req.Date)
	}

	for _, spec := range req.Blocks {
		b, err := infer.Block(spec, day, req.Now)
		if err != nil {
			return nil, err
		}

		if req.Remove {
			day.RemoveBlock(b)
		} else {
			day.AddBlock(b)
		}
		log.WithFields(logrus.Fields{
			"date":   req.Date.String(),
			"block":  b.String(),
			"remove": req.Remove,
		}).Debug("applied block")
	}
	if len(req.Blocks) > 0 {
		marks.Modify(req.Date)
	}
	return marks, nil
}

// PunchIn opens an ongoing block at at. Only one block may be open per day.
func PunchIn(day *model.Day, at time.Time) (block.Block, error) {
	if open, ok := day.OngoingBlock(); ok {
		return block.Block{}, errors.Statef("already punched in since %s", open.From.Format(brf.BlockLayout))
	}

	b := block.Ongoing(at)
	for _, e := range day.Blocks.Blocks() {
		if e.Contains(b) {
			return block.Block{}, errors.Statef("%s is already covered by %s", at.Format(brf.BlockLayout), e)
		}
	}

	day.AddBlock(b)
	return b, nil
}

// PunchOut closes the open block at at and returns the closed block.
func PunchOut(day *model.Day, at time.Time) (block.Block, error) {
	open, ok := day.OngoingBlock()
	if !ok {
		return block.Block{}, errors.Statef("not punched in on %s", day.Date.In(time.Local).Format(brf.DateLayout))
	}

	b, err := block.New(open.From, at)
	if err != nil {
		return block.Block{}, pkgerrors.Wrap(err, "punching out")
	}
	if b.IsOngoing() {
		return block.Block{}, errors.InvalidRangef("cannot punch out at %s, the block starts then", at.Format(brf.BlockLayout))
	}
	day.AddBlock(b)
	return b, nil
}
