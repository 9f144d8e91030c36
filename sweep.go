package seqbench

import (
	"fmt"
	"time"

	humanize "github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
)

//Row one output row of the sweep
type Row struct {
	N         int           `bson:"n"`
	ArrayTime time.Duration `bson:"vectime"`
	ListTime  time.Duration `bson:"listtime"`
	Gain      time.Duration `bson:"vecgain"`
}

//Sink receives sweep rows in strictly increasing N order
type Sink interface {
	Append(row *Row) error
}

//Sweep measure every N from low (inclusive) to high (exclusive) and emit one
//row per N. Rows are independent: no sequence or plan state carries across N.
func Sweep(universe *Universe, low, high, repeats int, sink Sink) error {
	entry := log.WithFields(log.Fields{Function: "Sweep"})
	for n := low; n < high; n++ {
		m := MeasurePair(universe, n, repeats)
		row := &Row{N: n, ArrayTime: m.ArrayTime, ListTime: m.ListTime, Gain: m.ListTime - m.ArrayTime}
		if err := sink.Append(row); err != nil {
			entry.WithError(err).Errorf("appending row for N=%d", n)
			return fmt.Errorf("error when appending row for N=%d: %s", n, err.Error())
		}
	}
	entry.Infof("swept %s sizes in [%d, %d)", humanize.Comma(int64(high-low)), low, high)
	return nil
}
