package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/MikeMC777/ordenes-backoffice/internal/customer"
	"github.com/MikeMC777/ordenes-backoffice/internal/dashboard"
	"github.com/MikeMC777/ordenes-backoffice/internal/order"
)

const unknownCustomer = "Unknown customer"

// itemsFlag collects repeated -item PRODUCT_ID:QUANTITY arguments.
type itemsFlag []order.Item

func (f *itemsFlag) String() string { return fmt.Sprint(*f) }

func (f *itemsFlag) Set(s string) error {
	pid, qty, ok := strings.Cut(s, ":")
	if !ok {
		qty = "1"
	}
	id, err := strconv.ParseInt(pid, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", pid)
	}
	n, err := strconv.Atoi(qty)
	if err != nil {
		return fmt.Errorf("invalid quantity %q", qty)
	}
	*f = append(*f, order.Item{ProductID: id, Quantity: n})
	return nil
}

func customerNames(list []customer.Customer) map[int64]string {
	out := make(map[int64]string, len(list))
	for _, c := range list {
		out[c.ID] = c.DisplayName()
	}
	return out
}

func (c *cli) orders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: orders list|show|add|set|rm")
	}
	sub, args := args[0], args[1:]
	switch sub {
	case "list":
		return c.listOrders(ctx, args)
	case "show":
		return c.showOrder(ctx, args)
	case "add":
		return c.addOrder(ctx, args)
	case "set":
		return c.setOrder(ctx, args)
	case "rm":
		id, _, err := parseIDArg(args)
		if err != nil {
			return err
		}
		if err := c.api.DeleteOrder(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "order %d deleted\n", id)
		return nil
	}
	return fmt.Errorf("unknown orders command %q", sub)
}

func (c *cli) listOrders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders list", flag.ContinueOnError)
	search := fs.String("search", "", "substring of order id or customer id")
	payment := fs.String("payment", "", "not_paid | paid")
	delivery := fs.String("delivery", "", "not_delivered | delivered")
	typ := fs.String("type", "", "pickup | delivery")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f := order.Filters{Search: *search}
	var err error
	if *payment != "" {
		if f.PaymentStatus, err = order.ParsePaymentStatus(*payment); err != nil {
			return err
		}
	}
	if *delivery != "" {
		if f.DeliveryStatus, err = order.ParseDeliveryStatus(*delivery); err != nil {
			return err
		}
	}
	if *typ != "" {
		if f.OrderType, err = order.ParseOrderType(*typ); err != nil {
			return err
		}
	}

	all, err := c.api.ListOrders(ctx, order.Filters{})
	if err != nil {
		return err
	}
	customers, err := c.api.ListCustomers(ctx)
	if err != nil {
		return err
	}
	names := customerNames(customers)

	tw := table(c.out)
	fmt.Fprintln(tw, "ID\tCUSTOMER\tTYPE\tPAYMENT\tDELIVERY\tWHEN\tITEMS\tTOTAL")
	for _, o := range order.Filter(all, f) {
		name, ok := names[o.CustomerID]
		if !ok {
			name = unknownCustomer
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			o.ID, name, o.OrderType, o.PaymentStatus, o.DeliveryStatus, when(o.Datetime), len(o.Items), dashboard.FormatUSD(o.TotalAmount))
	}
	return tw.Flush()
}

func (c *cli) showOrder(ctx context.Context, args []string) error {
	id, _, err := parseIDArg(args)
	if err != nil {
		return err
	}
	o, err := c.api.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	products, err := c.api.ListProducts(ctx)
	if err != nil {
		return err
	}
	catalog := order.NewCatalog(products)

	fmt.Fprintf(c.out, "order %d  customer %d  %s  %s  %s  %s\n\n",
		o.ID, o.CustomerID, o.OrderType, o.PaymentStatus, o.DeliveryStatus, when(o.Datetime))
	tw := table(c.out)
	fmt.Fprintln(tw, "PRODUCT\tQTY\tUNIT\tSUBTOTAL")
	for _, l := range order.Lines(o.Items, catalog) {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", l.Name, l.Quantity, dashboard.FormatUSD(l.UnitPrice), dashboard.FormatUSD(l.Subtotal))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "\nstored total:  %s\ncurrent total: %s\n",
		dashboard.FormatUSD(o.TotalAmount), dashboard.FormatUSD(order.Total(*o, catalog)))
	return nil
}

func (c *cli) addOrder(ctx context.Context, args []string) error {
	f := order.NewForm()
	var items itemsFlag
	fs := flag.NewFlagSet("orders add", flag.ContinueOnError)
	fs.Int64Var(&f.CustomerID, "customer", 0, "customer id")
	fs.Var(&items, "item", "PRODUCT_ID:QUANTITY (repeatable)")
	typ := fs.String("type", string(f.OrderType), "pickup | delivery")
	fs.StringVar(&f.Datetime, "datetime", "", "YYYY-MM-DDTHH:MM")
	paid := fs.Bool("paid", false, "already paid")
	if err := fs.Parse(args); err != nil {
		return err
	}
	f.Items = items
	f.OrderType = order.OrderType(*typ)
	if *paid {
		f.PaymentStatus = order.Paid
	}

	o, err := c.api.CreateOrder(ctx, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "order %d created, total %s\n", o.ID, dashboard.FormatUSD(o.TotalAmount))
	return nil
}

// setOrder pushes only the fields that differ from the stored order.
func (c *cli) setOrder(ctx context.Context, args []string) error {
	id, rest, err := parseIDArg(args)
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("orders set", flag.ContinueOnError)
	payment := fs.String("payment", "", "not_paid | paid | toggle")
	delivery := fs.String("delivery", "", "not_delivered | delivered | toggle")
	typ := fs.String("type", "", "pickup | delivery | toggle")
	if err := fs.Parse(rest); err != nil {
		return err
	}

	original, err := c.api.GetOrder(ctx, id)
	if err != nil {
		return err
	}
	edited := original.Clone()
	switch *payment {
	case "":
	case "toggle":
		edited.PaymentStatus = edited.PaymentStatus.Toggle()
	default:
		if edited.PaymentStatus, err = order.ParsePaymentStatus(*payment); err != nil {
			return err
		}
	}
	switch *delivery {
	case "":
	case "toggle":
		edited.DeliveryStatus = edited.DeliveryStatus.Toggle()
	default:
		if edited.DeliveryStatus, err = order.ParseDeliveryStatus(*delivery); err != nil {
			return err
		}
	}
	switch *typ {
	case "":
	case "toggle":
		edited.OrderType = edited.OrderType.Toggle()
	default:
		if edited.OrderType, err = order.ParseOrderType(*typ); err != nil {
			return err
		}
	}

	if order.Changes(*original, edited).Empty() {
		fmt.Fprintf(c.out, "order %d unchanged\n", id)
		return nil
	}
	updated, err := c.api.ApplyStatusChanges(ctx, *original, edited)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "order %d: %s, %s, %s\n", updated.ID, updated.OrderType, updated.PaymentStatus, updated.DeliveryStatus)
	return nil
}
