package session

import (
	"context"
	"fmt"

	"github.com/c360studio/escapetower/component"
	"github.com/c360studio/escapetower/prompt"
	"github.com/c360studio/escapetower/sorting"
)

// Menu choices outside the sort entries.
const (
	choiceQuit   = 0
	choiceSearch = 4
	choiceShow   = 5
)

// Banner is printed when a session starts.
const Banner = "=== Escape Tower — Component Manager ==="

// Farewell is printed when the user quits.
const Farewell = "\nMission complete. Good luck with the extraction!"

// Run drives the interactive session: registration (unless the inventory
// was seeded), then the menu until the user quits. It returns
// prompt.ErrEndOfInput as soon as input runs out, and ctx.Err() if the
// context is done between menu choices.
func (s *Session) Run(ctx context.Context, c *prompt.Console) error {
	c.Println(Banner)
	s.logger.Info("Session started", "seeded", s.Len() > 0)

	if s.Len() == 0 {
		if err := s.registerInteractive(c); err != nil {
			return err
		}
	}
	if !s.inv.Sealed() {
		s.inv.Seal()
		s.logger.Debug("Registration closed", "count", s.Len())
	}

	algs := sorting.Algorithms()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		printMenu(c, algs)
		choice, err := c.ReadInt("Choice: ", choiceQuit, choiceShow)
		if err != nil {
			return err
		}

		switch {
		case choice == choiceQuit:
			c.Println(Farewell)
			s.logger.Info("Session ended")
			return nil
		case choice >= 1 && choice <= len(algs):
			if err := s.runSort(c, algs[choice-1].ID); err != nil {
				return err
			}
		case choice == choiceSearch:
			if err := s.runSearch(c); err != nil {
				return err
			}
		case choice == choiceShow:
			WriteTable(c, s.Components(), s.display)
		}
	}
}

func (s *Session) registerInteractive(c *prompt.Console) error {
	countPrompt := fmt.Sprintf("How many components do you want to register (1..%d)? ", component.Capacity)
	n, err := c.ReadInt(countPrompt, 1, component.Capacity)
	if err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		c.Printf("\n-- Component %d/%d --\n", i+1, n)

		name, err := c.ReadText(fmt.Sprintf("Name (up to %d chars): ", component.MaxNameLen),
			"Name cannot be empty.", component.MaxNameLen, component.Truncate)
		if err != nil {
			return err
		}
		typ, err := c.ReadText(fmt.Sprintf("Type (up to %d chars): ", component.MaxTypeLen),
			"Type cannot be empty.", component.MaxTypeLen, component.Truncate)
		if err != nil {
			return err
		}
		priority, err := c.ReadInt(fmt.Sprintf("Priority (%d..%d): ", component.MinPriority, component.MaxPriority),
			component.MinPriority, component.MaxPriority)
		if err != nil {
			return err
		}

		comp, err := component.New(name, typ, priority)
		if err != nil {
			return fmt.Errorf("build component %d: %w", i+1, err)
		}
		if err := s.Register(comp); err != nil {
			return fmt.Errorf("register component %d: %w", i+1, err)
		}
	}
	return nil
}

func printMenu(c *prompt.Console, algs []sorting.Algorithm) {
	c.Println("\n=== Menu ===")
	for i, a := range algs {
		c.Printf("%d) Sort by %s (%s) + metrics\n", i+1, a.Key, a.Label)
	}
	c.Printf("%d) Search key component by NAME (binary)\n", choiceSearch)
	c.Printf("%d) Show components\n", choiceShow)
	c.Printf("%d) Quit\n", choiceQuit)
}

func (s *Session) runSort(c *prompt.Console, id sorting.ID) error {
	report, err := s.Sort(id)
	if err != nil {
		return err
	}
	c.Println()
	c.Println(sortedHeading(report))
	c.Println(FormatMetrics(report))
	WriteTable(c, s.inv.Items(), s.display)
	return nil
}

func (s *Session) runSearch(c *prompt.Console) error {
	if !s.SortedByName() {
		s.rejectSearch()
		c.Println("\nBinary search is only valid after sorting by NAME (option 1).")
		c.Println("Hint: sort by name and try again.")
		return nil
	}

	query, err := c.ReadLine("Enter the NAME of the key component: ")
	if err != nil {
		return err
	}
	report, err := s.Search(query)
	if err != nil {
		return err
	}

	c.Printf("Comparisons (binary): %d\n", report.Comparisons)
	if report.Found {
		c.Println(">> Key component FOUND! Visual confirmation:")
		c.Printf(" - Name: %s | Type: %s | Priority: %d\n",
			report.Component.Name, report.Component.Type, report.Component.Priority)
	} else {
		c.Println(">> Key component NOT found.")
	}
	return nil
}
