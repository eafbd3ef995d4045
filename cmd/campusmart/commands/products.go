package commands

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"campusmart/internal/catalog"
	"campusmart/internal/domain"
)

func productsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage the product catalog",
	}
	cmd.AddCommand(productsListCmd(), productAddCmd(), productUpdateCmd(), productDeleteCmd())
	return cmd
}

func productsListCmd() *cobra.Command {
	var business string
	var featured bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			var products []domain.Product
			switch {
			case business != "":
				products = wire.Store.ProductsByBusiness(business)
			case featured:
				products = wire.Store.FeaturedProducts()
			default:
				products = wire.Store.Products()
			}
			var rows [][]string
			for _, p := range products {
				rows = append(rows, []string{p.ID, p.Name, amount(p.Price), strconv.Itoa(p.Stock), p.BusinessID, p.Image})
			}
			return table(cmd.OutOrStdout(), "ID\tNAME\tPRICE\tSTOCK\tBUSINESS\tIMAGE", rows)
		},
	}
	cmd.Flags().StringVar(&business, "business", "", "only products of this business")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured products")
	return cmd
}

// productForm collects product fields from flags. Acceptance and featured
// flags stay nil unless given, so the normalizer can apply its defaults.
type productForm struct {
	p                                            domain.Product
	delivery, pickup, paypal, cash, featuredFlag bool
}

func (f *productForm) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.p.ID, "id", "", "product id")
	fs.StringVar(&f.p.Name, "name", "", "name")
	fs.StringVar(&f.p.Description, "description", "", "description")
	fs.Float64Var(&f.p.Price, "price", 0, "unit price")
	fs.StringVar(&f.p.Category, "category", "", "category")
	fs.IntVar(&f.p.Stock, "stock", 0, "units in stock")
	fs.StringVar(&f.p.BusinessID, "business", "", "selling business id")
	fs.StringVar(&f.p.Image, "image", "", "main image URL")
	fs.StringSliceVar(&f.p.Images, "images", nil, "gallery image URLs")
	fs.BoolVar(&f.delivery, "delivery", true, "accepts delivery")
	fs.BoolVar(&f.pickup, "pickup", true, "accepts pickup")
	fs.BoolVar(&f.paypal, "paypal", true, "accepts PayPal")
	fs.BoolVar(&f.cash, "cash", true, "accepts cash")
	fs.BoolVar(&f.featuredFlag, "featured", false, "show on the home page")
}

func (f *productForm) product(fs *pflag.FlagSet) (domain.Product, error) {
	p := f.p
	if !(p.Price >= 0) || math.IsInf(p.Price, 0) || p.Stock < 0 {
		return domain.Product{}, fmt.Errorf("price must be a finite non-negative number and stock must not be negative")
	}
	set := func(name string, v bool) *bool {
		if fs.Changed(name) {
			return catalog.Bool(v)
		}
		return nil
	}
	p.AcceptsDelivery = set("delivery", f.delivery)
	p.AcceptsPickup = set("pickup", f.pickup)
	p.AcceptsPaypal = set("paypal", f.paypal)
	p.AcceptsCash = set("cash", f.cash)
	p.Featured = set("featured", f.featuredFlag)
	return p, nil
}

func productAddCmd() *cobra.Command {
	var form productForm
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product, replacing one with the same id",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := form.product(cmd.Flags())
			if err != nil {
				return err
			}
			if _, ok := wire.Store.Business(p.BusinessID); !ok {
				return fmt.Errorf("no business %q", p.BusinessID)
			}
			stored, err := wire.Store.AddProduct(p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %s saved\n", stored.ID)
			return nil
		},
	}
	form.bind(cmd.Flags())
	_ = cmd.MarkFlagRequired("business")
	return cmd
}

func productUpdateCmd() *cobra.Command {
	var form productForm
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace an existing product and refresh it in the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := form.product(cmd.Flags())
			if err != nil {
				return err
			}
			ok, err := wire.Store.UpdateProduct(p)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no product %q", p.ID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Product %s updated\n", p.ID)
			return nil
		},
	}
	form.bind(cmd.Flags())
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func productDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wire.Store.DeleteProduct(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), "deleted")
			return nil
		},
	}
}
