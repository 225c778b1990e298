package console

import (
	"context"
	"fmt"

	"github.com/mnordli/stufflend/internal/models"
)

func (c *Console) itemMenu(ctx context.Context) bool {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "--- Items ---")
		fmt.Fprintln(c.out, "1. Create item")
		fmt.Fprintln(c.out, "2. Delete item")
		fmt.Fprintln(c.out, "3. List items")
		fmt.Fprintln(c.out, "4. Change cost")
		fmt.Fprintln(c.out, "5. Transfer owner")
		fmt.Fprintln(c.out, "6. Back")

		choice, ok := c.prompt("> ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			if !c.handleCreateItem(ctx) {
				return false
			}
		case "2":
			if !c.handleDeleteItem(ctx) {
				return false
			}
		case "3":
			c.handleListItems(ctx)
		case "4":
			if !c.handleChangeCost(ctx) {
				return false
			}
		case "5":
			if !c.handleTransferOwner(ctx) {
				return false
			}
		case "6":
			return true
		default:
			fmt.Fprintln(c.out, "Invalid selection.")
		}
	}
}

// selectItem lists all items and reads a selection. A nil item with ok=true
// means the selection was invalid and the caller should re-show its menu.
func (c *Console) selectItem(ctx context.Context, label string) (*models.Item, bool) {
	items, err := c.items.List(ctx)
	if err != nil {
		c.printError(err)
		return nil, true
	}
	if len(items) == 0 {
		fmt.Fprintln(c.out, "No items registered.")
		return nil, true
	}
	c.listItems(items)

	index, ok := c.promptIndex(label, len(items))
	if !ok {
		return nil, false
	}
	if index < 0 {
		fmt.Fprintln(c.out, "Invalid selection.")
		return nil, true
	}
	return &items[index], true
}

// selectMember lists all members and reads a selection.
func (c *Console) selectMember(ctx context.Context, label string) (*models.Member, bool) {
	members, err := c.members.List(ctx)
	if err != nil {
		c.printError(err)
		return nil, true
	}
	if len(members) == 0 {
		fmt.Fprintln(c.out, "No members registered.")
		return nil, true
	}
	c.listMembers(members)

	index, ok := c.promptIndex(label, len(members))
	if !ok {
		return nil, false
	}
	if index < 0 {
		fmt.Fprintln(c.out, "Invalid selection.")
		return nil, true
	}
	return &members[index], true
}

func (c *Console) handleCreateItem(ctx context.Context) bool {
	owner, ok := c.selectMember(ctx, "Owner: ")
	if !ok {
		return false
	}
	if owner == nil {
		return true
	}
	name, ok := c.prompt("Item name: ")
	if !ok {
		return false
	}
	cost, ok := c.promptInt("Cost: ")
	if !ok {
		return false
	}

	item, err := c.items.Create(ctx, owner.ID, name, cost)
	if err != nil {
		c.printError(err)
		return true
	}
	fmt.Fprintf(c.out, "Item created: %s (%s) cost=%d owner=%s\n", item.Name, item.ID, item.Cost, item.OwnerID)
	return true
}

func (c *Console) handleDeleteItem(ctx context.Context) bool {
	item, ok := c.selectItem(ctx, "Item to delete: ")
	if !ok {
		return false
	}
	if item == nil {
		return true
	}

	if err := c.items.Delete(ctx, item.ID); err != nil {
		c.printError(err)
		return true
	}
	fmt.Fprintln(c.out, "Item deleted; its open contracts were canceled.")
	return true
}

func (c *Console) handleListItems(ctx context.Context) {
	items, err := c.items.List(ctx)
	if err != nil {
		c.printError(err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(c.out, "No items registered.")
		return
	}
	c.listItems(items)
}

func (c *Console) handleChangeCost(ctx context.Context) bool {
	item, ok := c.selectItem(ctx, "Item: ")
	if !ok {
		return false
	}
	if item == nil {
		return true
	}
	cost, ok := c.promptInt("New cost: ")
	if !ok {
		return false
	}

	if err := c.items.UpdateCost(ctx, item.ID, cost); err != nil {
		c.printError(err)
		return true
	}
	fmt.Fprintln(c.out, "Cost updated.")
	return true
}

func (c *Console) handleTransferOwner(ctx context.Context) bool {
	item, ok := c.selectItem(ctx, "Item: ")
	if !ok {
		return false
	}
	if item == nil {
		return true
	}
	owner, ok := c.selectMember(ctx, "New owner: ")
	if !ok {
		return false
	}
	if owner == nil {
		return true
	}

	if err := c.items.TransferOwner(ctx, item.ID, owner.ID); err != nil {
		c.printError(err)
		return true
	}
	fmt.Fprintln(c.out, "Ownership transferred.")
	return true
}

func (c *Console) listItems(items []models.Item) {
	for i, item := range items {
		fmt.Fprintf(c.out, "%d. %s cost=%d owner=%s\n", i+1, item.Name, item.Cost, item.OwnerID)
	}
}
