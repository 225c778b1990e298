package console

import (
	"context"
	"fmt"

	"github.com/mnordli/stufflend/internal/models"
)

func (c *Console) memberMenu(ctx context.Context) bool {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "--- Members ---")
		fmt.Fprintln(c.out, "1. Create member")
		fmt.Fprintln(c.out, "2. Delete member")
		fmt.Fprintln(c.out, "3. List members")
		fmt.Fprintln(c.out, "4. Add credits")
		fmt.Fprintln(c.out, "5. Back")

		choice, ok := c.prompt("> ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			if !c.handleCreateMember(ctx) {
				return false
			}
		case "2":
			if !c.handleDeleteMember(ctx) {
				return false
			}
		case "3":
			c.handleListMembers(ctx)
		case "4":
			if !c.handleAddCredits(ctx) {
				return false
			}
		case "5":
			return true
		default:
			fmt.Fprintln(c.out, "Invalid selection.")
		}
	}
}

func (c *Console) handleCreateMember(ctx context.Context) bool {
	id, ok := c.prompt("ID: ")
	if !ok {
		return false
	}
	name, ok := c.prompt("Name: ")
	if !ok {
		return false
	}
	email, ok := c.prompt("Email: ")
	if !ok {
		return false
	}
	phone, ok := c.prompt("Phone: ")
	if !ok {
		return false
	}
	credits, ok := c.promptInt("Starting credits: ")
	if !ok {
		return false
	}

	member, err := c.members.Create(ctx, id, name, email, phone, credits)
	if err != nil {
		c.printError(err)
		return true
	}
	c.printMember(member)
	fmt.Fprintln(c.out, "Member created.")
	return true
}

func (c *Console) handleDeleteMember(ctx context.Context) bool {
	members, err := c.members.List(ctx)
	if err != nil {
		c.printError(err)
		return true
	}
	if len(members) == 0 {
		fmt.Fprintln(c.out, "No members registered.")
		return true
	}
	c.listMembers(members)

	index, ok := c.promptIndex("Member to delete: ", len(members))
	if !ok {
		return false
	}
	if index < 0 {
		fmt.Fprintln(c.out, "Invalid selection.")
		return true
	}

	if err := c.members.Delete(ctx, members[index].ID); err != nil {
		c.printError(err)
		return true
	}
	fmt.Fprintln(c.out, "Member deleted.")
	return true
}

func (c *Console) handleListMembers(ctx context.Context) {
	members, err := c.members.List(ctx)
	if err != nil {
		c.printError(err)
		return
	}
	if len(members) == 0 {
		fmt.Fprintln(c.out, "No members registered.")
		return
	}
	c.listMembers(members)
}

func (c *Console) handleAddCredits(ctx context.Context) bool {
	members, err := c.members.List(ctx)
	if err != nil {
		c.printError(err)
		return true
	}
	if len(members) == 0 {
		fmt.Fprintln(c.out, "No members registered.")
		return true
	}
	c.listMembers(members)

	index, ok := c.promptIndex("Member: ", len(members))
	if !ok {
		return false
	}
	if index < 0 {
		fmt.Fprintln(c.out, "Invalid selection.")
		return true
	}
	amount, ok := c.promptInt("Amount: ")
	if !ok {
		return false
	}

	if err := c.credits.AddCredits(ctx, members[index].ID, amount); err != nil {
		c.printError(err)
		return true
	}
	fmt.Fprintln(c.out, "Credits added.")
	return true
}

func (c *Console) listMembers(members []models.Member) {
	for i, member := range members {
		fmt.Fprintf(c.out, "%d. %s (%s) email=%s phone=%s credits=%d\n",
			i+1, member.Name, member.ID, member.Email, member.Phone, member.Credits)
	}
}

func (c *Console) printMember(member models.Member) {
	fmt.Fprintf(c.out, "Member %s: %s email=%s phone=%s credits=%d\n",
		member.ID, member.Name, member.Email, member.Phone, member.Credits)
}
