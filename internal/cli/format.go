package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/brickscan/internal/model"
	"github.com/Makepad-fr/brickscan/internal/scan"
	"github.com/Makepad-fr/brickscan/internal/ui"
)

func newFormatCommand(opt *Options) *cobra.Command {
	var bricks bool
	cmd := &cobra.Command{
		Use:   "format [raw...]",
		Short: "Format raw scans from arguments or stdin, one code per line",
		Example: `  brickscan format 'A*B*C*D'
  scanner-dump | brickscan format --prefix LOT-`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opt)
			if err != nil {
				return err
			}
			out := &linePrinter{w: cmd.OutOrStdout(), bricks: bricks}
			ctrl := scan.New(cfg.InitialSettings(), gateFor(cfg), out)

			if len(args) > 0 {
				for _, raw := range args {
					ctrl.HandleScan(raw)
				}
				return out.err
			}
			sc := bufio.NewScanner(cmd.InOrStdin())
			for sc.Scan() {
				ctrl.HandleScan(sc.Text())
				if out.err != nil {
					return out.err
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return out.err
		},
	}
	cmd.Flags().BoolVar(&bricks, "bricks", false, "draw each code as a brick")
	return cmd
}

// linePrinter is the headless presenter: every brick becomes a line on w.
// Nothing is ever acknowledged, so history, copy and notify stay unused.
type linePrinter struct {
	w      io.Writer
	bricks bool
	err    error
}

func (p *linePrinter) ShowEntry(e model.Entry) {
	if p.err != nil {
		return
	}
	line := string(e.Code)
	if p.bricks {
		line = ui.BrickLine(line)
	}
	_, p.err = fmt.Fprintln(p.w, line)
}

func (p *linePrinter) RemoveEntry(model.EntryID)  {}
func (p *linePrinter) RenderHistory([]model.Code) {}
func (p *linePrinter) Notify(string)              {}
func (p *linePrinter) Beep()                      {}
func (p *linePrinter) Copy(string)                {}
