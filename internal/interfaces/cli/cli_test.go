package cli_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almoxarifado/internal/app"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/interfaces/cli"
	"github.com/jhoicas/almoxarifado/pkg/config"
	"github.com/jhoicas/almoxarifado/pkg/logger"
)

const testSeed = `{
	"produtos": [
		{"id":"P001","nome":"Luva","quantidade":10,"estoque_minimo":5,"unidade":"par","fornecedor":"Descarpack","preco_unitario":0.45},
		{"id":"P002","nome":"Detergente","quantidade":1,"estoque_minimo":3}
	],
	"movimentacoes": [
		{"id":"M1717236000000","produto_id":"P001","tipo":"entrada","quantidade":10,"data":"2024-06-01T10:00:00Z"}
	]
}`

// run ejecuta almox con args sobre un archivo de datos en dir y devuelve la salida.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	seedPath := filepath.Join(dir, "seed.json")
	require.NoError(t, os.WriteFile(seedPath, []byte(testSeed), 0o644))

	var out bytes.Buffer
	root := cli.NewRootCommand(cli.Options{
		Out: &out,
		Build: func(ctx context.Context) (*app.Container, error) {
			cfg := &config.Config{
				Store:  config.StoreConfig{Driver: config.StoreDriverFile, Path: filepath.Join(dir, "almoxarifado.json"), SeedPath: seedPath},
				Sync:   config.SyncConfig{Timeout: time.Second},
				Report: config.ReportConfig{Title: "Almoxarifado"},
			}
			return app.Build(ctx, cfg, logger.New(logger.Config{Level: "error", Output: io.Discard}))
		},
	})
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestProduto_ListarYSalvar(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "produto", "listar")
	require.NoError(t, err)
	assert.Contains(t, out, "Luva")
	assert.Contains(t, out, "BAIXO")

	out, err = run(t, dir, "produto", "salvar", "--nome", "Balde", "--quantidade", "3", "--minimo", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "P003 cadastrado")

	// Edición parcial: conserva los demás campos.
	_, err = run(t, dir, "produto", "salvar", "--id", "P001", "--local", "A1")
	require.NoError(t, err)
	out, err = run(t, dir, "produto", "ver", "P001")
	require.NoError(t, err)
	assert.Contains(t, out, "A1")
	assert.Contains(t, out, "10 par")
}

func TestMov_RegistrarPersiste(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "mov", "registrar", "P001", "saida", "4", "--usuario", "Ana")
	require.NoError(t, err)
	assert.Contains(t, out, "Quantidade atual: 6")

	_, err = run(t, dir, "mov", "registrar", "P002", "saida", "5")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	today := time.Now().UTC().Format("2006-01-02")
	out, err = run(t, dir, "mov", "listar", "--inicio", today, "--fim", today)
	require.NoError(t, err)
	assert.Contains(t, out, "Ana")
}

func TestTelaHistorico_MuestraCatalogo(t *testing.T) {
	out, err := run(t, t.TempDir(), "tela", "historico")

	require.NoError(t, err)
	assert.Contains(t, out, "Descarpack")
	assert.Contains(t, out, "0.45")
	assert.Contains(t, out, "Detergente")
	assert.NotContains(t, out, "M1717236000000", "no lista el libro de movimientos")
}

func TestMovListar_RequiereFechas(t *testing.T) {
	_, err := run(t, t.TempDir(), "mov", "listar", "--inicio", "2024-06-01")

	assert.ErrorIs(t, err, domain.ErrInvalidRange)
}

func TestTelas(t *testing.T) {
	dir := t.TempDir()
	for _, screen := range []string{"dashboard", "produtos", "movimentacoes", "historico"} {
		out, err := run(t, dir, "tela", screen)
		require.NoError(t, err, screen)
		assert.NotEmpty(t, out, screen)
	}

	_, err := run(t, dir, "tela", "relatorios")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBackupRestaurarLimpar(t *testing.T) {
	dir := t.TempDir()
	backupPath := filepath.Join(dir, "backup.json")

	_, err := run(t, dir, "backup", backupPath)
	require.NoError(t, err)

	_, err = run(t, dir, "limpar")
	assert.Error(t, err, "sin --sim no borra")

	_, err = run(t, dir, "limpar", "--sim")
	require.NoError(t, err)
	out, err := run(t, dir, "produto", "listar")
	require.NoError(t, err)
	assert.NotContains(t, out, "Luva")

	_, err = run(t, dir, "restaurar", backupPath)
	require.NoError(t, err)
	out, err = run(t, dir, "produto", "listar")
	require.NoError(t, err)
	assert.Contains(t, out, "Luva")
}

func TestSync_SinEndpoint(t *testing.T) {
	_, err := run(t, t.TempDir(), "sync")

	assert.ErrorIs(t, err, domain.ErrSync)
}

func TestEtiquetaYRelatorio(t *testing.T) {
	dir := t.TempDir()
	labels := filepath.Join(dir, "etiquetas.pdf")
	report := filepath.Join(dir, "inventario.pdf")

	_, err := run(t, dir, "etiqueta", "P001", "-n", "2", "-o", labels)
	require.NoError(t, err)
	_, err = run(t, dir, "relatorio", "inventario", "-o", report)
	require.NoError(t, err)

	for _, path := range []string{labels, report} {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), path)
	}
}

func TestParseScreen(t *testing.T) {
	s, err := cli.ParseScreen(" Historico ")
	require.NoError(t, err)
	assert.Equal(t, cli.ScreenHistory, s)
	assert.Equal(t, "historico", s.String())
}
