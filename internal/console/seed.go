package console

import (
	"context"
	"fmt"
	"time"
)

// Seed loads a small demo data set: three members, three items, and one
// contract over 2024-01-05..2024-01-07.
func (c *Console) Seed(ctx context.Context) error {
	m1, err := c.members.Create(ctx, "M1", "Member One", "m1@example.com", "1234567890", 500)
	if err != nil {
		return fmt.Errorf("seed member M1: %w", err)
	}
	if _, err := c.items.Create(ctx, m1.ID, "Item One", 50); err != nil {
		return fmt.Errorf("seed items for M1: %w", err)
	}
	if _, err := c.items.Create(ctx, m1.ID, "Item Two", 10); err != nil {
		return fmt.Errorf("seed items for M1: %w", err)
	}

	m2, err := c.members.Create(ctx, "M2", "Member Two", "m2@example.com", "0987654321", 100)
	if err != nil {
		return fmt.Errorf("seed member M2: %w", err)
	}

	m3, err := c.members.Create(ctx, "M3", "Member Three", "m3@example.com", "1122334455", 100)
	if err != nil {
		return fmt.Errorf("seed member M3: %w", err)
	}
	i3, err := c.items.Create(ctx, m3.ID, "Item Three for M3", 10)
	if err != nil {
		return fmt.Errorf("seed item for M3: %w", err)
	}

	start := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC)
	if _, err := c.contracts.Create(ctx, "C1", i3.ID, m2.ID, start, end); err != nil {
		return fmt.Errorf("seed contract C1: %w", err)
	}

	return nil
}
