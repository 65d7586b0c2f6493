package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vitorsantos08-ui/API/internal/application/dto"
	"github.com/vitorsantos08-ui/API/internal/application/usecase"
	"github.com/vitorsantos08-ui/API/internal/domain/port"
)

// Console drives the interactive operator loop: it prompts for a user and
// product identifier, runs the evaluation, renders the outcome, and repeats
// until the operator declines to continue.
type Console struct {
	validate     *usecase.ValidateIntegration
	renderer     *Renderer
	in           *bufio.Reader
	usersBase    string
	productsBase string
	threshold    int
}

// New creates a Console reading operator input from in.
func New(
	validate *usecase.ValidateIntegration,
	renderer *Renderer,
	in io.Reader,
	usersBase, productsBase string,
	threshold int,
) *Console {
	return &Console{
		validate:     validate,
		renderer:     renderer,
		in:           bufio.NewReader(in),
		usersBase:    usersBase,
		productsBase: productsBase,
		threshold:    threshold,
	}
}

// Run executes the operator loop until the operator declines to continue,
// input is exhausted, or the context is canceled. Evaluation failures never
// end the loop; the operator always regains control.
func (c *Console) Run(ctx context.Context) error {
	c.renderer.Header(c.usersBase, c.productsBase, c.threshold)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		userID, ok, err := c.promptInt("\nenter user id (1-10): ")
		if err != nil {
			return err
		}
		if !ok {
			c.renderer.Warn("please enter a valid number")
			continue
		}

		productID, ok, err := c.promptInt("enter product id (1-20): ")
		if err != nil {
			return err
		}
		if !ok {
			c.renderer.Warn("please enter a valid number")
			continue
		}

		c.evaluate(ctx, userID, productID)

		again, err := c.prompt("\nvalidate another pair? (y/n): ")
		if err != nil {
			return err
		}
		if strings.ToLower(again) != "y" {
			c.renderer.Goodbye()
			return nil
		}
	}
}

func (c *Console) evaluate(ctx context.Context, userID, productID int) {
	res, err := c.validate.Execute(ctx, dto.ValidateIntegrationRequest{
		UserID:    userID,
		ProductID: productID,
	})
	if err != nil {
		// Absence was already rendered through the observer; anything else
		// still deserves a line.
		if !errors.Is(err, port.ErrRecordNotFound) {
			c.renderer.Warn(fmt.Sprintf("evaluation failed: %v", err))
		}
		return
	}

	c.renderer.Summary(summaryView{
		UserName:        res.UserName,
		UserEmail:       res.UserEmail,
		UserCity:        res.UserCity,
		ProductTitle:    res.ProductTitle,
		ProductPrice:    res.ProductPrice,
		ProductCategory: res.ProductCategory,
		Reasons:         res.Reasons,
		Threshold:       c.threshold,
		Blocked:         res.Blocked,
	})
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.renderer.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt reads one line and parses it as an integer. A parse failure is
// reported via ok=false, not an error, so the loop can re-prompt.
func (c *Console) promptInt(label string) (int, bool, error) {
	line, err := c.prompt(label)
	if err != nil {
		return 0, false, err
	}
	value, convErr := strconv.Atoi(line)
	if convErr != nil {
		return 0, false, nil
	}
	return value, true, nil
}
