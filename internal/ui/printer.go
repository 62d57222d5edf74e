package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/skip2/go-qrcode"
)

// Printer writes the user facing console output
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Banner prints title as big text followed by version and description
func (p *Printer) Banner(title, version, description string) {
	if text, err := pterm.DefaultBigText.WithLetters(putils.LettersFromString(title)).Srender(); err == nil {
		fmt.Fprint(p.w, text)
	} else {
		fmt.Fprintln(p.w, title)
	}
	fmt.Fprintln(p.w, version)
	fmt.Fprintln(p.w, description)
}

// PrepareTransfer announces the batch about to run
func (p *Printer) PrepareTransfer(amount, symbol string, count int, network string) {
	fmt.Fprintf(p.w, "Prepare to transfer %s to %s addresses on %s.\n",
		pterm.Green(amount+" "+symbol), pterm.Blue(count), pterm.Yellow(network))
}

// PrepareFaucet announces the faucet loop about to run
func (p *Printer) PrepareFaucet(count int, coins []string, network string) {
	fmt.Fprintf(p.w, "Prepare to run faucet %s times for %v on %s.\n",
		pterm.Blue(count), coins, pterm.Yellow(network))
}

// Progress prints a dim 1-based progress line
func (p *Printer) Progress(index, total int, message string) {
	fmt.Fprintln(p.w, pterm.Gray(fmt.Sprintf("[%d/%d] %s", index, total, message)))
}

// Balance prints the current balance of an account
func (p *Printer) Balance(amount, symbol string) {
	fmt.Fprintf(p.w, "Current account balance is %s\n", pterm.Green(amount+" "+symbol))
}

// Address prints the account in use, with a terminal QR code when showQR is set
func (p *Printer) Address(address string, showQR bool) {
	fmt.Fprintf(p.w, "Account %s\n", pterm.Cyan(address))
	if !showQR {
		return
	}

	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return
	}
	fmt.Fprint(p.w, qr.ToSmallString(false))
}

// Done prints the final success line
func (p *Printer) Done(message string) {
	fmt.Fprintln(p.w, pterm.Green(message))
}
