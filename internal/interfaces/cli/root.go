// Package cli implementa el comando almox: las mismas operaciones que la API HTTP,
// contra el mismo almacén local, con salida en tablas.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/app"
)

// Builder construye el contenedor de casos de uso.
type Builder func(ctx context.Context) (*app.Container, error)

// Options dependencias del comando raíz.
type Options struct {
	Out   io.Writer
	Build Builder
}

type runner struct {
	out       io.Writer
	build     Builder
	container *app.Container
}

// NewRootCommand arma el árbol de comandos.
func NewRootCommand(opts Options) *cobra.Command {
	r := &runner{out: opts.Out, build: opts.Build}

	root := &cobra.Command{
		Use:           "almox",
		Short:         "Controle de almoxarifado",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if r.out == nil {
				r.out = cmd.OutOrStdout()
			}
			if r.build == nil {
				return errors.New("builder no configurado")
			}
			c, err := r.build(cmd.Context())
			if err != nil {
				return err
			}
			r.container = c
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if r.container != nil {
				r.container.Sync.Wait()
				r.container.Close()
			}
		},
	}

	root.AddCommand(
		r.productCommand(),
		r.movementCommand(),
		r.dashboardCommand(),
		r.alertsCommand(),
		r.configCommand(),
		r.backupCommand(),
		r.restoreCommand(),
		r.clearCommand(),
		r.syncCommand(),
		r.reportCommand(),
		r.labelCommand(),
		r.screenCommand(),
	)
	return root
}

func (r *runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
