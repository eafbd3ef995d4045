package commands

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"campusmart/internal/domain"
	"campusmart/internal/money"
)

func checkoutCmd() *cobra.Command {
	var payment string
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place one order per business from the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			placed, err := wire.Store.Checkout(domain.PaymentMethod(payment))
			if err != nil {
				return err
			}
			return printOrders(cmd, placed)
		},
	}
	cmd.Flags().StringVar(&payment, "payment", string(domain.PaymentCash), "cash, paypal or transfer")
	return cmd
}

func ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "Manage orders",
	}
	cmd.AddCommand(ordersListCmd(), orderAddCmd(), orderStatusCmd(), orderDeleteCmd())
	return cmd
}

func printOrders(cmd *cobra.Command, orders []domain.Order) error {
	var rows [][]string
	for _, o := range orders {
		rows = append(rows, []string{
			o.ID, o.CustomerID, o.BusinessID, strconv.Itoa(len(o.Products)),
			amount(o.Total), o.Status.String(), o.PaymentMethod.String(), o.CreatedAt.Format(time.RFC3339),
		})
	}
	return table(cmd.OutOrStdout(), "ID\tCUSTOMER\tBUSINESS\tITEMS\tTOTAL\tSTATUS\tPAYMENT\tCREATED", rows)
}

func ordersListCmd() *cobra.Command {
	var customer, business string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case customer != "":
				return printOrders(cmd, wire.Store.OrdersForCustomer(customer))
			case business != "":
				return printOrders(cmd, wire.Store.OrdersForBusiness(business))
			default:
				return printOrders(cmd, wire.Store.Orders())
			}
		},
	}
	cmd.Flags().StringVar(&customer, "customer", "", "only orders placed by this user")
	cmd.Flags().StringVar(&business, "business", "", "only orders received by this business")
	return cmd
}

// parseItem reads "productID:quantity:price".
func parseItem(s string) (domain.OrderItem, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return domain.OrderItem{}, fmt.Errorf("item %q: want product:quantity:price", s)
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("item %q quantity: %w", s, err)
	}
	if qty < 1 {
		return domain.OrderItem{}, fmt.Errorf("item %q: quantity must be at least 1", s)
	}
	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return domain.OrderItem{}, fmt.Errorf("item %q price: %w", s, err)
	}
	if !(price >= 0) || math.IsInf(price, 0) {
		return domain.OrderItem{}, fmt.Errorf("item %q: price must be a finite non-negative number", s)
	}
	return domain.OrderItem{ProductID: parts[0], Quantity: qty, Price: price}, nil
}

func orderAddCmd() *cobra.Command {
	var o domain.Order
	var items []string
	var payment string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an order directly",
		RunE: func(cmd *cobra.Command, args []string) error {
			o.PaymentMethod = domain.PaymentMethod(payment)
			if !o.PaymentMethod.Valid() {
				return fmt.Errorf("unknown payment method %q", payment)
			}
			for _, s := range items {
				it, err := parseItem(s)
				if err != nil {
					return err
				}
				o.Products = append(o.Products, it)
			}
			if !cmd.Flags().Changed("total") {
				o.Total = money.Sum(o.Products, func(it domain.OrderItem) (float64, int) {
					return it.Price, it.Quantity
				})
			}
			stored, err := wire.Store.AddOrder(o)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s recorded\n", stored.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.CustomerID, "customer", "", "customer user id")
	f.StringVar(&o.BusinessID, "business", "", "business id")
	f.StringSliceVar(&items, "item", nil, "line as product:quantity:price, repeatable")
	f.Float64Var(&o.Total, "total", 0, "order total (default: sum of items)")
	f.StringVar(&payment, "payment", string(domain.PaymentCash), "cash, paypal or transfer")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("business")
	return cmd
}

func orderStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Set an order's status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Store.UpdateOrderStatus(args[0], domain.OrderStatus(args[1])); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s: %s\n", args[0], args[1])
			return nil
		},
	}
}

func orderDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <order-id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Store.DeleteOrder(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
