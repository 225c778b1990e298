// Package console implements the interactive menu loop. It is presentation
// glue only: it parses raw input, invokes the services, and formats the
// outcomes; all validation and domain rules live below it.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mnordli/stufflend/internal/models"
	"github.com/mnordli/stufflend/internal/service"
)

// Console drives the interactive session.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	members   *service.MemberService
	items     *service.ItemService
	contracts *service.ContractService
	credits   *service.CreditService
}

// New creates a Console reading raw input from in and writing to out.
func New(in io.Reader, out io.Writer, members *service.MemberService, items *service.ItemService,
	contracts *service.ContractService, credits *service.CreditService) *Console {
	return &Console{
		in:        bufio.NewScanner(in),
		out:       out,
		members:   members,
		items:     items,
		contracts: contracts,
		credits:   credits,
	}
}

// Run shows the main menu until the user quits or input ends.
func (c *Console) Run(ctx context.Context) {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "=== Stufflend ===")
		fmt.Fprintln(c.out, "1. Members")
		fmt.Fprintln(c.out, "2. Items")
		fmt.Fprintln(c.out, "3. Contracts")
		fmt.Fprintln(c.out, "4. Advance time")
		fmt.Fprintln(c.out, "5. Quit")

		choice, ok := c.prompt("> ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			if !c.memberMenu(ctx) {
				return
			}
		case "2":
			if !c.itemMenu(ctx) {
				return
			}
		case "3":
			if !c.contractMenu(ctx) {
				return
			}
		case "4":
			if !c.handleAdvanceTime(ctx) {
				return
			}
		case "5":
			fmt.Fprintln(c.out, "Goodbye!")
			return
		default:
			fmt.Fprintln(c.out, "Invalid selection.")
		}
	}
}

func (c *Console) handleAdvanceTime(ctx context.Context) bool {
	days, ok := c.promptInt("Days to advance: ")
	if !ok {
		return false
	}
	if days < 0 {
		fmt.Fprintln(c.out, "Please enter a non-negative number.")
		return true
	}
	newDate, err := c.contracts.AdvanceTime(ctx, days)
	if err != nil {
		c.printError(err)
		return true
	}
	fmt.Fprintf(c.out, "Advanced %d day(s); expired contracts settled as of %s.\n",
		days, newDate.Format("2006-01-02"))
	return true
}

// prompt prints a label and reads one trimmed line.
// The second return value is false once input is exhausted.
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// promptInt keeps prompting until it reads a valid integer or input ends.
func (c *Console) promptInt(label string) (int, bool) {
	for {
		raw, ok := c.prompt(label)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a number.")
			continue
		}
		return n, true
	}
}

// promptIndex reads a 1-based selection into a list of the given size.
// Returns -1 for an invalid selection.
func (c *Console) promptIndex(label string, size int) (int, bool) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > size {
		return -1, true
	}
	return n - 1, true
}

// printError maps domain failures to user messages.
func (c *Console) printError(err error) {
	switch {
	case errors.Is(err, models.ErrDuplicateID):
		fmt.Fprintln(c.out, "That ID is already taken.")
	case errors.Is(err, models.ErrDuplicateEmail):
		fmt.Fprintln(c.out, "That email is already registered.")
	case errors.Is(err, models.ErrDuplicatePhone):
		fmt.Fprintln(c.out, "That phone number is already registered.")
	case errors.Is(err, models.ErrNegativeCredits):
		fmt.Fprintln(c.out, "Credits must not be negative.")
	case errors.Is(err, models.ErrNegativeAmount):
		fmt.Fprintln(c.out, "Amount must not be negative.")
	case errors.Is(err, models.ErrNegativeCost):
		fmt.Fprintln(c.out, "Cost must not be negative.")
	case errors.Is(err, models.ErrInvalidEndDate):
		fmt.Fprintln(c.out, "The end date must not precede the start date.")
	case errors.Is(err, models.ErrInvalidEmailFormat):
		fmt.Fprintln(c.out, "Invalid email format.")
	case errors.Is(err, models.ErrInvalidPhoneNumber):
		fmt.Fprintln(c.out, "Invalid phone number.")
	case errors.Is(err, models.ErrMemberNotFound):
		fmt.Fprintln(c.out, "Member not found.")
	case errors.Is(err, models.ErrItemNotFound):
		fmt.Fprintln(c.out, "Item not found.")
	case errors.Is(err, models.ErrBorrowerNotFound):
		fmt.Fprintln(c.out, "Borrower not found.")
	case errors.Is(err, models.ErrContractNotFound):
		fmt.Fprintln(c.out, "Contract not found.")
	case errors.Is(err, models.ErrInsufficientCredits):
		fmt.Fprintln(c.out, "The borrower cannot cover the item's cost.")
	case errors.Is(err, models.ErrConflictingContract):
		fmt.Fprintln(c.out, "The contract conflicts with an existing contract on that item.")
	default:
		fmt.Fprintf(c.out, "Unexpected error: %v\n", err)
	}
}
