package console

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"mykabu/internal/application/port"
)

// Sink surfaces store failures to the user. A client-only ledger has no
// other feedback channel, so every reported error is printed, not merely
// logged.
type Sink struct {
	out io.Writer
}

func NewSink() *Sink { return &Sink{out: os.Stderr} }

// NewSinkTo directs the alerts elsewhere, for tests.
func NewSinkTo(out io.Writer) *Sink { return &Sink{out: out} }

func (s *Sink) ReportError(command string, err error) {
	log.Error().Str("command", command).Err(err).Msg("store error")
	fmt.Fprintf(s.out, "error: %v\n", err)
}

var _ port.ErrorSink = (*Sink)(nil)
