package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/almoxarifado/internal/application/backup"
	"github.com/jhoicas/almoxarifado/internal/domain"
)

func (r *runner) backupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup [arquivo]",
		Short: "Exporta todos os dados para um arquivo JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := backup.FileName
			if len(args) == 1 {
				path = args[0]
			}
			data, err := r.container.Backup.Export()
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("escribir backup: %w", err)
			}
			r.printf("Backup salvo em %s\n", path)
			return nil
		},
	}
}

func (r *runner) restoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restaurar <arquivo>",
		Short: "Substitui os dados pelos de um backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("%w: %v", domain.ErrImport, err)
			}
			if err := r.container.Backup.Restore(cmd.Context(), data); err != nil {
				return err
			}
			r.printf("Dados restaurados!\n")
			return nil
		},
	}
}

func (r *runner) clearCommand() *cobra.Command {
	var confirm bool
	cmd := &cobra.Command{
		Use:   "limpar",
		Short: "Exclui todos os produtos e movimentações (mantém o tema)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirm {
				return errors.New("operação irreversível: confirme com --sim")
			}
			if err := r.container.Backup.ClearAll(cmd.Context()); err != nil {
				return err
			}
			r.printf("Todos os dados foram excluídos!\n")
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirm, "sim", false, "confirma a exclusão")
	return cmd
}

func (r *runner) syncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Envia a lista de produtos para a planilha",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := r.container.Sync.SyncNow(cmd.Context()); err != nil {
				return err
			}
			r.printf("Planilha sincronizada!\n")
			return nil
		},
	}
}
