package nlu

import (
	"context"

	"github.com/900mahdi/mohasib3/internal/models"
)

// Extractor turns a transcribed spoken sentence into a partial financial
// record. Fields the utterance does not mention must be left nil; the
// extractor never defaults anything to zero.
//
// Implementations absorb their own failures: a transport error, a bad status
// or an unparseable response all come back as an empty partial with no error,
// and the caller treats that as a silent no-op. One utterance, one attempt.
type Extractor interface {
	Extract(ctx context.Context, utterance string) models.PartialRecord
}
