package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/aaravmahajanofficial/tienda/internal/models"
	service "github.com/aaravmahajanofficial/tienda/internal/services"
	"github.com/spf13/cobra"
)

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every articulo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {

			items, err := c.catalog.List(c.context(cmd))
			if err != nil {
				return c.report(err)
			}

			c.table(items)
			return nil
		},
	}
}

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one articulo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			id, err := parseID(args[0])
			if err != nil {
				return c.report(err)
			}

			item, err := c.catalog.Edit(c.context(cmd), id)
			if err != nil {
				return c.report(err)
			}

			c.table([]models.Articulo{*item})
			return nil
		},
	}
}

func (c *cli) saveCmd() *cobra.Command {

	var (
		nombre string
		precio float64
		id     int64
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create an articulo, or update it when --id is given",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {

			in := models.ArticuloInput{Nombre: nombre, Precio: precio}
			if cmd.Flags().Changed("id") {
				in.ID = &id
			}

			result, err := c.catalog.Save(c.context(cmd), in)
			if err != nil {
				return c.report(err)
			}

			c.notice(result.Notice)
			if result.Articulos != nil {
				c.table(result.Articulos)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&nombre, "nombre", "", "articulo name")
	cmd.Flags().Float64Var(&precio, "precio", 0, "articulo price")
	cmd.Flags().Int64Var(&id, "id", 0, "id of the articulo to update")

	return cmd
}

func (c *cli) deleteCmd() *cobra.Command {

	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an articulo after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {

			id, err := parseID(args[0])
			if err != nil {
				return c.report(err)
			}

			var confirmer service.Confirmer = newPromptConfirmer(c.in, c.out)
			if yes {
				confirmer = service.Confirmed(true)
			}

			result, err := c.catalog.Delete(c.context(cmd), id, confirmer)
			if err != nil {
				return c.report(err)
			}

			c.notice(result.Notice)
			if result.Articulos != nil {
				c.table(result.Articulos)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func (c *cli) table(items []models.Articulo) {

	if len(items) == 0 {
		fmt.Fprintln(c.out, "No hay artículos.")
		return
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOMBRE\tPRECIO")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t$%.2f\n", item.ID, item.Nombre, item.Precio)
	}
	_ = tw.Flush()
}

func parseID(raw string) (int64, error) {

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid articulo id %q", raw)
	}

	return id, nil
}
