package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/osvaldoandrade/ulid/internal/platform"
	"github.com/osvaldoandrade/ulid/pkg/ulid"
	"github.com/osvaldoandrade/ulid/pkg/ulid/ulidinterop"
	"github.com/osvaldoandrade/ulid/pkg/ulid/ulidschema"
)

type ulidOutput struct {
	ULID      string `json:"ulid"`
	Timestamp uint64 `json:"timestamp,omitempty"`
	Time      string `json:"time,omitempty"`
	Bytes     string `json:"bytes,omitempty"`
	UUID      string `json:"uuid,omitempty"`
}

type listOutput struct {
	ULIDs   []ulidOutput `json:"ulids"`
	Invalid []string     `json:"invalid,omitempty"`
}

func runRoot(cmd *cobra.Command, opts *RootOptions, args []string, genOpts []ulid.Option) error {
	out := cmd.OutOrStdout()
	switch {
	case opts.ShowVersion:
		_, err := fmt.Fprintf(out, "ulid %s\n", Version)
		return err
	case opts.ShowSchema:
		return writeSchema(out)
	}

	if opts.Count < 1 || opts.Count > MaxCount {
		return usageError(ErrInvalidCount)
	}
	if len(args) == 0 {
		return runGenerate(out, opts, genOpts)
	}
	if cmd.Flags().Changed("count") {
		return usageError(ErrCountWithArg)
	}
	return runValidate(out, opts, args)
}

func runGenerate(out io.Writer, opts *RootOptions, genOpts []ulid.Option) error {
	gen := ulid.NewGenerator(genOpts...)
	ids := make([]ulid.ULID, 0, opts.Count)

	var genErr error
	for i := 0; i < opts.Count; i++ {
		if !opts.Strict {
			ids = append(ids, gen.Next())
			continue
		}
		id, err := gen.NextStrict()
		if err != nil {
			genErr = fmt.Errorf("generate ulid %d of %d: %w", i+1, opts.Count, err)
			break
		}
		ids = append(ids, id)
	}
	slog.Debug("generated ulids", "count", len(ids), "strict", opts.Strict)

	if err := writeULIDs(out, ids, nil, opts.Verbose, opts.JSONOutput); err != nil {
		return err
	}
	return genErr
}

func runValidate(out io.Writer, opts *RootOptions, args []string) error {
	valid := make([]ulid.ULID, 0, len(args))
	var broken []string
	for _, arg := range args {
		id, err := ulid.Parse(arg)
		if err != nil {
			slog.Debug("invalid ulid", "input", arg, "error", err)
			broken = append(broken, arg)
			continue
		}
		valid = append(valid, id)
	}
	slog.Debug("validated ulids", "valid", len(valid), "invalid", len(broken))

	if opts.Verbose || opts.JSONOutput {
		if err := writeULIDs(out, valid, broken, opts.Verbose, opts.JSONOutput); err != nil {
			return err
		}
	}
	if len(broken) > 0 {
		return &InvalidULIDsError{Values: broken}
	}
	return nil
}

func writeULIDs(out io.Writer, ids []ulid.ULID, invalid []string, verbose, asJSON bool) error {
	if asJSON {
		payload := listOutput{ULIDs: make([]ulidOutput, 0, len(ids)), Invalid: invalid}
		for _, id := range ids {
			payload.ULIDs = append(payload.ULIDs, toOutput(id, verbose))
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	ui := newRenderer(out, asJSON)
	for i, id := range ids {
		if !verbose {
			if _, err := fmt.Fprintln(out, id.String()); err != nil {
				return err
			}
			continue
		}
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := writeKV(out, ui, "ULID", ui.ok(id.String())); err != nil {
			return err
		}
		if err := writeKV(out, ui, "Time", ui.dim(platform.FormatTime(id.Time()))); err != nil {
			return err
		}
	}
	return nil
}

func toOutput(id ulid.ULID, verbose bool) ulidOutput {
	output := ulidOutput{ULID: id.String()}
	if !verbose {
		return output
	}
	raw := id.Bytes()
	output.Timestamp = id.Timestamp()
	output.Time = platform.FormatTime(id.Time())
	output.Bytes = hex.EncodeToString(raw[:])
	output.UUID = ulidinterop.ToUUID(id).String()
	return output
}

func writeSchema(out io.Writer) error {
	doc, err := ulidschema.Marshal()
	if err != nil {
		return err
	}
	if _, err := out.Write(doc); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out)
	return err
}

func writeKV(out io.Writer, ui renderer, key, value string) error {
	_, err := fmt.Fprintf(out, "%s: %s\n", ui.key(key), value)
	return err
}
