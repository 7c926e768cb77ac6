package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/kurzatem/argparser/internal/pkg/cli"
	"github.com/kurzatem/argparser/internal/pkg/manifest"
)

// row is one parsed occurrence ready for output.
type row struct {
	Key      string
	Priority int
	Values   []any
}

func collect(parsed *cli.Parsed[string], convert bool) ([]row, error) {
	rows := make([]row, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		var values []any
		if convert {
			v, err := r.Convert()
			if err != nil {
				return nil, fmt.Errorf("argument %s: %w", r.Key, err)
			}
			values = v
			if arg, ok := r.Payload.(manifest.Argument); ok && strings.EqualFold(arg.Type, "rune") {
				for i, x := range values {
					if c, ok := x.(rune); ok {
						values[i] = string(c)
					}
				}
			}
		} else {
			for _, s := range r.Values {
				values = append(values, s)
			}
		}
		rows = append(rows, row{Key: r.Key, Priority: r.Priority(), Values: values})
	}
	return rows, nil
}

// jsonValue maps values structpb cannot represent onto ones it can.
func jsonValue(v any) any {
	switch v := v.(type) {
	case time.Duration:
		return v.String()
	default:
		return v
	}
}

func renderJSON(w io.Writer, rows []row, unclaimed []string) error {
	results := make([]any, 0, len(rows))
	for _, r := range rows {
		values := make([]any, 0, len(r.Values))
		for _, v := range r.Values {
			values = append(values, jsonValue(v))
		}
		results = append(results, map[string]any{
			"key":      r.Key,
			"priority": r.Priority,
			"values":   values,
		})
	}
	rest := make([]any, 0, len(unclaimed))
	for _, s := range unclaimed {
		rest = append(rest, s)
	}

	doc, err := structpb.NewStruct(map[string]any{
		"results":   results,
		"unclaimed": rest,
	})
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return strconv.Quote(v)
	default:
		return fmt.Sprint(v)
	}
}

func renderTable(w io.Writer, rows []row, unclaimed []string) {
	header := color.New(color.Bold)
	key := color.New(color.FgCyan)
	dim := color.New(color.Faint)
	warn := color.New(color.FgYellow)

	width := len("KEY")
	for _, r := range rows {
		width = max(width, len(r.Key))
	}

	header.Fprintf(w, "%-3s %-*s %-8s %s\n", "#", width, "KEY", "PRIORITY", "VALUES")
	for i, r := range rows {
		values := make([]string, len(r.Values))
		for j, v := range r.Values {
			values[j] = formatValue(v)
		}
		fmt.Fprintf(w, "%-3d %s %-8d ", i, key.Sprintf("%-*s", width, r.Key), r.Priority)
		if len(values) == 0 {
			dim.Fprintln(w, "-")
			continue
		}
		fmt.Fprintln(w, strings.Join(values, " "))
	}
	if len(unclaimed) > 0 {
		warn.Fprintf(w, "unclaimed: %s\n", strings.Join(unclaimed, " "))
	}
}
