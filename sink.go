package seqbench

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

//CSVSink writes rows to a CSV artifact, one row per N, durations in
//integer nanoseconds
type CSVSink struct {
	f *os.File
	w *csv.Writer
}

//NewCSVSink create the output file and write the header
func NewCSVSink(path string) (*CSVSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error when creating output file %s: %s", path, err.Error())
	}
	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "vectime", "listtime", "vecgain"}); err != nil {
		f.Close()
		return nil, fmt.Errorf("error when writing header of %s: %s", path, err.Error())
	}
	return &CSVSink{f: f, w: w}, nil
}

//Append write one row
func (sink *CSVSink) Append(row *Row) error {
	return sink.w.Write([]string{
		strconv.Itoa(row.N),
		strconv.FormatInt(row.ArrayTime.Nanoseconds(), 10),
		strconv.FormatInt(row.ListTime.Nanoseconds(), 10),
		strconv.FormatInt(row.Gain.Nanoseconds(), 10),
	})
}

//Close flush buffered rows and close the artifact
func (sink *CSVSink) Close() error {
	sink.w.Flush()
	if err := sink.w.Error(); err != nil {
		sink.f.Close()
		return err
	}
	return sink.f.Close()
}

//MongoSink appends rows as documents of a MongoDB collection
type MongoSink struct {
	collection *mongo.Collection
}

//NewMongoSink create a MongoDB client and target the configured collection
func NewMongoSink(ctx context.Context, mongoURL, database, collection string) (*MongoSink, error) {
	entry := log.WithFields(log.Fields{Function: "NewMongoSink"})
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		entry.WithError(err).Errorf("creating mongodb client: %s", mongoURL)
		return nil, err
	}
	entry.Infof("create mongodb client: %s", mongoURL)
	return &MongoSink{collection: client.Database(database).Collection(collection)}, nil
}

//Append insert one row document
func (sink *MongoSink) Append(row *Row) error {
	_, err := sink.collection.InsertOne(context.Background(), row)
	return err
}

//MultiSink fans every row out to several sinks
type MultiSink struct {
	sinks []Sink
}

//NewMultiSink create a sink writing to every given sink in order
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

//Append write the row to every sink, stopping at the first error
func (sink *MultiSink) Append(row *Row) error {
	for _, s := range sink.sinks {
		if err := s.Append(row); err != nil {
			return err
		}
	}
	return nil
}

//TableSink collects rows and renders the whole sweep as a console table
type TableSink struct {
	rows []*Row
}

//NewTableSink create an empty table sink
func NewTableSink() *TableSink {
	return new(TableSink)
}

//Append collect one row
func (sink *TableSink) Append(row *Row) error {
	sink.rows = append(sink.rows, row)
	return nil
}

//Render write the collected rows to out as a table with per-N winner
func (sink *TableSink) Render(out io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"N", "vectime (ns)", "listtime (ns)", "vecgain (ns)", "winner"})
	for _, r := range sink.rows {
		winner := "vector"
		if r.Gain < 0 {
			winner = "list"
		}
		t.AppendRow(table.Row{r.N, r.ArrayTime.Nanoseconds(), r.ListTime.Nanoseconds(), r.Gain.Nanoseconds(), winner})
	}
	t.Render()
}
