package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/ordenes-backoffice/internal/auth"
	"github.com/MikeMC777/ordenes-backoffice/internal/customer"
	"github.com/MikeMC777/ordenes-backoffice/internal/dashboard"
	"github.com/MikeMC777/ordenes-backoffice/internal/product"
)

func credentials(name string, args []string) (auth.Credentials, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	var cr auth.Credentials
	fs.StringVar(&cr.Username, "u", "", "username")
	fs.StringVar(&cr.Password, "p", "", "password")
	err := fs.Parse(args)
	return cr, err
}

func (c *cli) register(ctx context.Context, args []string) error {
	cr, err := credentials("register", args)
	if err != nil {
		return err
	}
	u, err := c.api.Register(ctx, cr)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "user %s created\n", u.Username)
	return nil
}

func (c *cli) login(ctx context.Context, args []string) error {
	cr, err := credentials("login", args)
	if err != nil {
		return err
	}
	if err := c.api.Login(ctx, cr.Username, cr.Password); err != nil {
		return err
	}
	if err := c.store.Save(c.api.Session().Tokens()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	fmt.Fprintf(c.out, "logged in as %s\n", cr.Username)
	return nil
}

func (c *cli) logout(ctx context.Context) error {
	err := c.api.Logout(ctx)
	if rmErr := c.store.Remove(); rmErr != nil {
		return rmErr
	}
	return err
}

func parseIDArg(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, errors.New("missing id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, nil, fmt.Errorf("invalid id %q", args[0])
	}
	return id, args[1:], nil
}

func customerFlags(fs *flag.FlagSet, f *customer.Form) {
	fs.StringVar(&f.Name, "name", f.Name, "name")
	fs.StringVar(&f.PhoneNumber, "phone", f.PhoneNumber, "phone number")
	fs.StringVar(&f.Address, "address", f.Address, "address")
	fs.StringVar(&f.Notes, "notes", f.Notes, "notes")
}

func (c *cli) customers(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: customers list|add|edit|rm")
	}
	sub, args := args[0], args[1:]
	switch sub {
	case "list":
		fs := flag.NewFlagSet("customers list", flag.ContinueOnError)
		search := fs.String("search", "", "filter by name, phone, address or notes")
		if err := fs.Parse(args); err != nil {
			return err
		}
		all, err := c.api.ListCustomers(ctx)
		if err != nil {
			return err
		}
		tw := table(c.out)
		fmt.Fprintln(tw, "ID\tNAME\tPHONE\tADDRESS\tNOTES")
		for _, cu := range customer.Filter(all, *search) {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", cu.ID, cu.DisplayName(), cu.PhoneNumber, truncate(cu.Address, 30), truncate(cu.Notes, 30))
		}
		return tw.Flush()

	case "add":
		var f customer.Form
		fs := flag.NewFlagSet("customers add", flag.ContinueOnError)
		customerFlags(fs, &f)
		if err := fs.Parse(args); err != nil {
			return err
		}
		cu, err := c.api.CreateCustomer(ctx, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "customer %d created\n", cu.ID)
		return nil

	case "edit":
		id, rest, err := parseIDArg(args)
		if err != nil {
			return err
		}
		cur, err := c.api.GetCustomer(ctx, id)
		if err != nil {
			return err
		}
		f := customer.FromCustomer(*cur)
		fs := flag.NewFlagSet("customers edit", flag.ContinueOnError)
		customerFlags(fs, &f)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if _, err := c.api.UpdateCustomer(ctx, id, f); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "customer %d updated\n", id)
		return nil

	case "rm":
		id, _, err := parseIDArg(args)
		if err != nil {
			return err
		}
		if err := c.api.DeleteCustomer(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "customer %d deleted\n", id)
		return nil
	}
	return fmt.Errorf("unknown customers command %q", sub)
}

// decimalFlag parses a price argument.
type decimalFlag struct{ d *decimal.Decimal }

func (f decimalFlag) String() string {
	if f.d == nil {
		return "0"
	}
	return f.d.String()
}

func (f decimalFlag) Set(s string) error {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*f.d = d
	return nil
}

func productFlags(fs *flag.FlagSet, f *product.Form) {
	fs.StringVar(&f.Name, "name", f.Name, "name")
	fs.Var(decimalFlag{&f.Price}, "price", "unit price")
	fs.StringVar(&f.Description, "desc", f.Description, "description")
	fs.StringVar(&f.PictureURL, "picture", f.PictureURL, "picture URL")
	fs.BoolVar(&f.IsActive, "active", f.IsActive, "available for new orders")
}

func (c *cli) products(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: products list|add|edit|rm")
	}
	sub, args := args[0], args[1:]
	switch sub {
	case "list":
		fs := flag.NewFlagSet("products list", flag.ContinueOnError)
		var f product.Filters
		fs.StringVar(&f.Search, "search", "", "filter by name or description")
		fs.BoolVar(&f.ActiveOnly, "active", false, "only active products")
		if err := fs.Parse(args); err != nil {
			return err
		}
		all, err := c.api.ListProducts(ctx)
		if err != nil {
			return err
		}
		tw := table(c.out)
		fmt.Fprintln(tw, "ID\tNAME\tPRICE\tACTIVE\tDESCRIPTION")
		for _, p := range product.Filter(all, f) {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%t\t%s\n", p.ID, p.Name, dashboard.FormatUSD(p.Price), p.IsActive, truncate(p.Description, 40))
		}
		return tw.Flush()

	case "add":
		f := product.NewForm()
		fs := flag.NewFlagSet("products add", flag.ContinueOnError)
		productFlags(fs, &f)
		if err := fs.Parse(args); err != nil {
			return err
		}
		p, err := c.api.CreateProduct(ctx, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "product %d created\n", p.ID)
		return nil

	case "edit":
		id, rest, err := parseIDArg(args)
		if err != nil {
			return err
		}
		cur, err := c.api.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		f := product.FromProduct(*cur)
		fs := flag.NewFlagSet("products edit", flag.ContinueOnError)
		productFlags(fs, &f)
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if _, err := c.api.UpdateProduct(ctx, id, f); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "product %d updated\n", id)
		return nil

	case "rm":
		id, _, err := parseIDArg(args)
		if err != nil {
			return err
		}
		if err := c.api.DeleteProduct(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "product %d deleted\n", id)
		return nil
	}
	return fmt.Errorf("unknown products command %q", sub)
}

func (c *cli) dashboard(ctx context.Context) error {
	s, err := c.api.Dashboard(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "total sales:  %s\norders:       %d\ncustomers:    %d\nproducts:     %d\n\n",
		dashboard.FormatUSD(s.TotalSales), s.TotalOrders, s.TotalCustomers, s.TotalProducts)

	tw := table(c.out)
	fmt.Fprintln(tw, "MONTH\tSALES")
	for _, m := range s.SalesByMonth {
		fmt.Fprintf(tw, "%s %d\t%s\n", m.Month, m.Year, dashboard.FormatUSD(m.Sales))
	}
	fmt.Fprintln(tw, "\t")
	fmt.Fprintln(tw, "DAY\tORDERS")
	for _, d := range s.OrdersByDay {
		fmt.Fprintf(tw, "%s %s\t%d\n", d.Day, d.Date, d.Orders)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "\npaid %d / not paid %d, delivered %d / not delivered %d\n",
		s.Status.Paid, s.Status.NotPaid, s.Status.Delivered, s.Status.NotDelivered)
	return nil
}
