package console

import (
	"context"
	"fmt"
	"time"

	"github.com/mnordli/stufflend/internal/models"
)

const dateLayout = "2006-01-02"

func (c *Console) contractMenu(ctx context.Context) bool {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "--- Contracts ---")
		fmt.Fprintln(c.out, "1. Create contract")
		fmt.Fprintln(c.out, "2. Delete contract")
		fmt.Fprintln(c.out, "3. List contracts")
		fmt.Fprintln(c.out, "4. Back")

		choice, ok := c.prompt("> ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			if !c.handleCreateContract(ctx) {
				return false
			}
		case "2":
			if !c.handleDeleteContract(ctx) {
				return false
			}
		case "3":
			c.handleListContracts(ctx)
		case "4":
			return true
		default:
			fmt.Fprintln(c.out, "Invalid selection.")
		}
	}
}

func (c *Console) promptDate(label string) (time.Time, bool) {
	for {
		raw, ok := c.prompt(label)
		if !ok {
			return time.Time{}, false
		}
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			fmt.Fprintln(c.out, "Please use YYYY-MM-DD.")
			continue
		}
		return t, true
	}
}

func (c *Console) handleCreateContract(ctx context.Context) bool {
	item, ok := c.selectItem(ctx, "Item to borrow: ")
	if !ok {
		return false
	}
	if item == nil {
		return true
	}
	borrower, ok := c.selectMember(ctx, "Borrower: ")
	if !ok {
		return false
	}
	if borrower == nil {
		return true
	}

	id, ok := c.prompt("Contract ID: ")
	if !ok {
		return false
	}
	start, ok := c.promptDate("Start date (YYYY-MM-DD): ")
	if !ok {
		return false
	}
	end, ok := c.promptDate("End date (YYYY-MM-DD): ")
	if !ok {
		return false
	}

	contract, err := c.contracts.Create(ctx, id, item.ID, borrower.ID, start, end)
	if err != nil {
		c.printError(err)
		return true
	}
	c.printContract(contract)
	fmt.Fprintln(c.out, "Contract created.")
	return true
}

func (c *Console) handleDeleteContract(ctx context.Context) bool {
	id, ok := c.prompt("Contract ID: ")
	if !ok {
		return false
	}
	if err := c.contracts.Delete(ctx, id); err != nil {
		c.printError(err)
		return true
	}
	fmt.Fprintln(c.out, "Contract deleted.")
	return true
}

func (c *Console) handleListContracts(ctx context.Context) {
	contracts, err := c.contracts.List(ctx)
	if err != nil {
		c.printError(err)
		return
	}
	if len(contracts) == 0 {
		fmt.Fprintln(c.out, "No contracts.")
		return
	}
	for _, contract := range contracts {
		c.printContract(contract)
	}
}

func (c *Console) printContract(contract models.Contract) {
	status := "inactive"
	if contract.Active {
		status = "active"
	}
	fmt.Fprintf(c.out, "Contract %s: item=%s borrower=%s %s to %s cost=%d (%s)\n",
		contract.ID, contract.ItemID, contract.BorrowerID,
		contract.StartDate.Format(dateLayout), contract.EndDate.Format(dateLayout),
		contract.ItemCost, status)
}
