package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and edit the cart",
	}
	cmd.AddCommand(cartShowCmd(), cartAddCmd(), cartSetCmd(), cartRemoveCmd(), cartClearCmd())
	return cmd
}

func cartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print cart lines and total",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			for _, l := range wire.Store.Cart() {
				rows = append(rows, []string{l.Product.ID, l.Product.Name, amount(l.Product.Price), strconv.Itoa(l.Quantity)})
			}
			out := cmd.OutOrStdout()
			if err := table(out, "PRODUCT\tNAME\tPRICE\tQTY", rows); err != nil {
				return err
			}
			fmt.Fprintf(out, "Total: %s\n", amount(wire.Store.CartTotal()))
			return nil
		},
	}
}

func cartAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product-id> [quantity]",
		Short: "Add units of a product",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := wire.Store.Product(args[0])
			if !ok {
				return fmt.Errorf("no product %q", args[0])
			}
			qty := 1
			if len(args) == 2 {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("quantity: %w", err)
				}
				qty = n
			}
			if err := wire.Store.AddToCart(p, qty); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", amount(wire.Store.CartTotal()))
			return nil
		},
	}
}

func cartSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <product-id> <quantity>",
		Short: "Set a line's quantity; zero removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity: %w", err)
			}
			wire.Store.UpdateCartQuantity(args[0], qty)
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", amount(wire.Store.CartTotal()))
			return nil
		},
	}
}

func cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Store.RemoveFromCart(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", amount(wire.Store.CartTotal()))
			return nil
		},
	}
}

func cartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Store.ClearCart()
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}
}
