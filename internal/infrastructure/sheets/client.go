// Package sheets envía el catálogo a la planilla externa (Apps Script) vía HTTP POST.
package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/almoxarifado/internal/application/ports"
	"github.com/jhoicas/almoxarifado/internal/domain"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

var _ ports.ProductExporter = (*Client)(nil)

// Client adaptador que implementa ProductExporter. El cuerpo de la respuesta se ignora;
// solo cuenta si la llamada llegó y el status no es de error.
type Client struct {
	url  string
	http *resty.Client
}

// NewClient construye el cliente para el endpoint indicado.
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		http: resty.New().
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

// ExportProducts implementa ports.ProductExporter.
func (c *Client) ExportProducts(ctx context.Context, products []*entity.Product) error {
	if products == nil {
		products = []*entity.Product{}
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Sync-ID", uuid.NewString()).
		SetBody(products).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSync, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", domain.ErrSync, resp.StatusCode())
	}
	return nil
}
