package applog

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/chrisant996/dirx/internal/errs"
)

// ScanReporter returns an internal/scan.Reporter (a func(error)) that logs
// a recoverable per-entry failure at Warn level and also prints it to w
// via the error taxonomy's TTY-aware renderer, so a --debug run gets the
// full structured trail in development.log while every run still sees
// the message on the terminal.
func ScanReporter(log *logrus.Entry, w io.Writer) func(err error) {
	return func(err error) {
		if err == nil {
			return
		}
		fields := logrus.Fields{}
		if e, ok := err.(*errs.Error); ok {
			fields["kind"] = e.Kind()
			fields["code"] = e.Code()
		}
		log.WithFields(fields).Warn(err.Error())
		errs.Report(w, err)
	}
}
