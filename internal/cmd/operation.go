package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	saaserrors "saasconnector/pkg/errors"
	"saasconnector/pkg/transport"
)

// input is what a vendor subcommand receives from the command line.
type input struct {
	args   []string
	params map[string]any
	data   []byte
}

// id parses the positional argument at i as a vendor id.
func (in input) id(i int) (int, error) {
	id, err := strconv.Atoi(in.args[i])
	if err != nil {
		return 0, saaserrors.NewValidationError("id", in.args[i], "integer", "id must be an integer")
	}
	return id, nil
}

// ids parses positional arguments from i on.
func (in input) ids(from int) ([]int, error) {
	ids := make([]int, 0, len(in.args)-from)
	for i := from; i < len(in.args); i++ {
		id, err := in.id(i)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// decode unmarshals --data into v.
func (in input) decode(v any) error {
	if len(in.data) == 0 {
		return saaserrors.NewValidationError("data", "", "required", "--data is required")
	}
	if err := json.Unmarshal(in.data, v); err != nil {
		return saaserrors.NewValidationError("data", "", "json", fmt.Sprintf("--data is not valid JSON: %v", err))
	}
	return nil
}

// list decodes --data as a JSON array of objects.
func (in input) list() ([]map[string]any, error) {
	var items []map[string]any
	if err := in.decode(&items); err != nil {
		return nil, err
	}
	return items, nil
}

// object decodes --data as a JSON object.
func (in input) object() (map[string]any, error) {
	var obj map[string]any
	if err := in.decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// operation is one vendor API call exposed as a subcommand.
type operation[C any] struct {
	use   string
	short string
	args  cobra.PositionalArgs
	run   func(ctx context.Context, client C, in input) (any, error)
}

// addOperations registers ops under parent. connect builds the vendor client once per run.
func addOperations[C any](parent *cobra.Command, connect func(context.Context) (C, error), ops []operation[C]) {
	for _, op := range ops {
		var (
			params map[string]string
			data   string
		)

		args := op.args
		if args == nil {
			args = cobra.NoArgs
		}

		sub := &cobra.Command{
			Use:   op.use,
			Short: op.short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				raw, err := readData(cmd, data)
				if err != nil {
					return err
				}

				ctx := cmd.Context()
				client, err := connect(ctx)
				if err != nil {
					return err
				}

				result, err := op.run(ctx, client, input{args: args, params: toParams(params), data: raw})
				if err != nil {
					return err
				}
				return printResult(cmd.OutOrStdout(), result)
			},
		}
		sub.Flags().StringToStringVarP(&params, "param", "p", nil, "request parameter key=value, repeatable")
		sub.Flags().StringVarP(&data, "data", "d", "", "JSON request body, @file to read a file or - for stdin")

		parent.AddCommand(sub)
	}
}

func toParams(raw map[string]string) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	params := make(map[string]any, len(raw))
	for k, v := range raw {
		params[k] = v
	}
	return params
}

func readData(cmd *cobra.Command, data string) ([]byte, error) {
	switch {
	case data == "-":
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read data from stdin: %w", err)
		}
		return raw, nil
	case strings.HasPrefix(data, "@"):
		raw, err := os.ReadFile(strings.TrimPrefix(data, "@"))
		if err != nil {
			return nil, fmt.Errorf("failed to read data file: %w", err)
		}
		return raw, nil
	default:
		return []byte(data), nil
	}
}

// printResult writes result as indented JSON. A raw response that is not 2xx is printed and
// reported as an error.
func printResult(w io.Writer, result any) error {
	resp, ok := result.(*transport.Response)
	if !ok {
		return writeJSON(w, result)
	}

	if parsed := resp.Parsed(); parsed != nil {
		if err := writeJSON(w, parsed); err != nil {
			return err
		}
	} else if len(resp.Body()) > 0 {
		fmt.Fprintln(w, string(resp.Body()))
	}

	if !resp.IsSuccessful() {
		return fmt.Errorf("request failed with HTTP status %d", resp.StatusCode())
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
