package commands

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"otpmig/internal/migration"
	"otpmig/internal/wire"
)

// inspect: dump a payload field by field without interpreting it.
func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [url]",
		Short: "Dump the wire structure of a migration payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawURL := ""
			if len(args) > 0 {
				rawURL = args[0]
			} else {
				u, err := promptURL()
				if err != nil {
					return err
				}
				rawURL = u
			}

			data, err := migration.DataParam(rawURL)
			if err != nil {
				return err
			}
			payload, err := migration.DecodeData(data)
			if err != nil {
				return err
			}
			return dumpPayload(os.Stdout, payload)
		},
	}
}

var topName = map[uint64]string{
	migration.FieldEntry:      "otp_parameters",
	migration.FieldVersion:    "version",
	migration.FieldBatchSize:  "batch_size",
	migration.FieldBatchIndex: "batch_index",
	migration.FieldBatchID:    "batch_id",
}

var paramName = map[uint64]string{
	migration.ParamSecret:    "secret",
	migration.ParamName:      "name",
	migration.ParamIssuer:    "issuer",
	migration.ParamAlgorithm: "algorithm",
	migration.ParamDigits:    "digits",
	migration.ParamCounter:   "counter",
	migration.ParamType:      "type",
}

func dumpPayload(w io.Writer, payload []byte) error {
	fmt.Fprintf(w, "payload: %d bytes\n", len(payload))
	d := wire.NewDecoder(payload)
	for {
		off := d.Pos()
		f, err := d.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		label := fieldLabel(topName, f.Number)
		if f.Number == migration.FieldEntry && f.Type == wire.TypeLen {
			fmt.Fprintf(w, "%04x  %s %s: %d-byte message\n", off, label, f.Type, len(f.Bytes))
			if err := dumpEntry(w, f.Bytes); err != nil {
				return fmt.Errorf("in %s at offset %#x: %w", label, off, err)
			}
			continue
		}
		fmt.Fprintf(w, "%04x  %s %s: %s\n", off, label, f.Type, preview(f))
	}
}

func dumpEntry(w io.Writer, body []byte) error {
	d := wire.NewDecoder(body)
	for {
		off := d.Pos()
		f, err := d.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "      %04x  %s %s: %s\n",
			off, fieldLabel(paramName, f.Number), f.Type, preview(f))
	}
}

func fieldLabel(names map[uint64]string, num uint64) string {
	if n, ok := names[num]; ok {
		return fmt.Sprintf("field %d (%s)", num, n)
	}
	return fmt.Sprintf("field %d (?)", num)
}

// preview renders a field value for the dump: numerics in decimal, byte
// values as quoted text when printable and as hex otherwise.
func preview(f wire.Field) string {
	if f.Type != wire.TypeLen {
		return fmt.Sprintf("%d", f.Value)
	}
	if printable(f.Bytes) {
		return fmt.Sprintf("%d bytes %q", len(f.Bytes), f.Bytes)
	}
	return fmt.Sprintf("%d bytes %x", len(f.Bytes), f.Bytes)
}

func printable(b []byte) bool {
	s := string(b)
	if !strings.ContainsFunc(s, unicode.IsLetter) {
		return false
	}
	for _, r := range s {
		if r == unicode.ReplacementChar || (unicode.IsControl(r) && r != '\n' && r != '\t') {
			return false
		}
	}
	return true
}
