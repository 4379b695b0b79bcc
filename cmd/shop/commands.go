package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cplinktech/storefront/internal/core/domain"
)

// newRootCommand builds the CLI. build runs once per invocation, before any
// subcommand.
func newRootCommand(out io.Writer, build func(ctx context.Context) (*app, error)) *cobra.Command {
	var a *app

	root := &cobra.Command{
		Use:          "shop",
		Short:        "Browse the CPLINK catalog, manage your cart and check out",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = build(cmd.Context())
			if err != nil {
				return err
			}
			a.cart.OnChange(func(c domain.Cart) {
				fmt.Fprintf(out, "(cart: %d items)\n", c.Count())
			})
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a == nil {
				return nil
			}
			a.log.Sync()
			return a.close()
		},
	}
	root.SetOut(out)

	root.AddCommand(
		&cobra.Command{
			Use:   "catalog",
			Short: "List catalog products",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c := a.loadCatalog(cmd.Context())
				if c.Len() == 0 {
					fmt.Fprintln(out, "Catalog is empty.")
					return nil
				}
				for _, p := range c.Products() {
					fmt.Fprintf(out, "%-24s %-28s %s\n", p.ID, p.Name, a.formatter.Format(p.PriceCents))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <name>",
			Short: "Show a product card with its price and inquiry link",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				p := a.loadCatalog(cmd.Context()).ProductFor(strings.Join(args, " "))
				inquiry := a.inquiries.Product(p)
				fmt.Fprintf(out, "%s\n%s\nAsk on WhatsApp: %s\n", p.Name, a.formatter.Format(p.PriceCents), inquiry.URL)
				return nil
			},
		},
		cartActionCommand("add <name>", "Add a product to the cart by name", func() *app { return a }, out),
		cartActionCommand("inc <id>", "Increase a cart line by one", func() *app { return a }, out),
		cartActionCommand("dec <id>", "Decrease a cart line by one, removing it at zero", func() *app { return a }, out),
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove a cart line",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cart, err := a.cart.Remove(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				a.printCart(out, cart)
				return nil
			},
		},
		&cobra.Command{
			Use:   "cart",
			Short: "Show the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a.printCart(out, a.cart.Read(cmd.Context()))
				return nil
			},
		},
		checkoutCommand(func() *app { return a }, out),
		&cobra.Command{
			Use:   "orders",
			Short: "List locally recorded orders",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				orders, err := a.orders.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(orders) == 0 {
					fmt.Fprintln(out, "No orders recorded.")
					return nil
				}
				for _, o := range orders {
					fmt.Fprintf(out, "%s  %s  %s <%s>  %d items  %s\n",
						o.ID, o.Created.Format("2006-01-02 15:04"), o.Name, o.Email,
						o.Items.Count(), a.formatter.Format(o.TotalCents))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "inquire",
			Short: "Print a WhatsApp link asking about the whole cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				inquiry, err := a.inquiries.Cart(a.cart.Read(cmd.Context()))
				if errors.Is(err, domain.ErrEmptyCart) {
					fmt.Fprintln(out, "Your cart is empty.")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(out, inquiry.URL)
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.cart.Clear(cmd.Context())
			},
		},
	)
	return root
}

// cartActionCommand dispatches the cart action named by the command itself
// ("add", "inc" or "dec").
func cartActionCommand(use, short string, current func() *app, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := domain.ParseAction(cmd.Name())
			if err != nil {
				return err
			}

			a := current()
			target := strings.Join(args, " ")

			var product domain.Product
			if action == domain.ActionAdd {
				product = a.loadCatalog(cmd.Context()).ProductFor(target)
			} else if line, ok := a.cart.Read(cmd.Context()).Find(target); ok {
				product = line.Product()
			} else {
				product = domain.Product{ID: target}
			}

			cart, err := a.cart.Dispatch(cmd.Context(), domain.CartCommand{Action: action, Product: product})
			if err != nil {
				return err
			}
			a.printCart(out, cart)
			return nil
		},
	}
}

func checkoutCommand(current func() *app, out io.Writer) *cobra.Command {
	var customer domain.Customer

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Pay for the cart, or record the order locally when payments are unavailable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			outcome, err := a.checkout.Initiate(cmd.Context(), a.cart.Read(cmd.Context()), customer)
			if errors.Is(err, domain.ErrEmptyCart) {
				fmt.Fprintln(out, "Your cart is empty.")
				return nil
			}
			if err != nil {
				return err
			}

			switch outcome.Kind {
			case domain.OutcomeRedirect:
				fmt.Fprintf(out, "Complete your payment at:\n%s\n", outcome.URL)
			case domain.OutcomeSimulatedOrder:
				fmt.Fprintf(out, "Order placed (simulated). Order ID: %s\nTotal: %s\n",
					outcome.Order.ID, a.formatter.Format(outcome.Order.TotalCents))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&customer.Name, "name", "", "customer name")
	cmd.Flags().StringVar(&customer.Email, "email", "", "customer email")
	return cmd
}
