package favigen

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/favigen/favigen/utils"
)

// Ops bundles the source and destination options of a single CLI invocation.
type Ops struct {
	Src, Dst, PipeName string
}

// Execute resolves the vector source, runs the full favicon pipeline against
// it and reports the per-file confirmations on the standard output.
// The source can be a local file, a remote URL or a stdin pipe.
func (p *Processor) Execute(op *Ops) {
	var src io.Reader

	defaultMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ FAVIGEN", utils.StatusMessage),
		utils.DecorateText("⇢ rendering the favicon assets...", utils.DefaultMessage),
	)
	p.Spinner = utils.NewSpinner(defaultMsg, time.Millisecond*80)

	// Check if the source path is a local file, an URL or a pipe name.
	if utils.IsValidUrl(op.Src) {
		tmp, err := utils.DownloadVector(op.Src)
		if tmp != nil {
			defer os.Remove(tmp.Name())
			defer tmp.Close()
		}
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the vector source: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		src = tmp
	} else if op.Src == op.PipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			log.Fatalf(utils.DecorateText("`-` should be used with a pipe for stdin\n", utils.ErrorMessage))
		}
		src = os.Stdin
	} else {
		f, err := os.Open(op.Src)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the vector source: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		defer f.Close()
		src = f
	}

	if op.Dst != "" && op.Dst != "." {
		if _, err := os.Stat(op.Dst); err != nil {
			if err := os.MkdirAll(op.Dst, 0755); err != nil {
				log.Fatalf(
					utils.DecorateText("Unable to create the output directory: %v", utils.ErrorMessage),
					utils.DecorateText(err.Error(), utils.DefaultMessage),
				)
			}
		}
		p.OutDir = op.Dst
	}

	successMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("⚡ FAVIGEN", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the favicon assets have been generated ✔", utils.SuccessMessage),
	)
	errorMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("⚡ FAVIGEN", utils.StatusMessage),
		utils.DecorateText("generating the favicon assets failed...", utils.DefaultMessage),
		utils.DecorateText("✘", utils.ErrorMessage),
	)

	// Buffer the confirmation lines while the progress indicator owns the
	// terminal and flush them once it stopped.
	var confirmations bytes.Buffer
	p.Status = &confirmations

	now := time.Now()
	p.Spinner.Start()

	err := p.Process(src)
	if err != nil {
		p.Spinner.StopMsg = errorMsg
	} else {
		p.Spinner.StopMsg = successMsg
	}
	p.Spinner.Stop()

	io.Copy(os.Stdout, &confirmations)

	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError generating the favicon assets: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}

	fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
	)
}
