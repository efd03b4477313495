// Package directus é o gateway de leitura/escrita do armazém de dados
// externo. Toda coleção durável (partner_logins, clients, partner_payments)
// vive no Directus; este pacote só traduz (coleção, filtros) em chamadas
// HTTP autenticadas e normaliza respostas vazias.
package directus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrNaoEncontrado indica que o registro pedido por ID não existe no armazém.
var ErrNaoEncontrado = errors.New("registro não encontrado no Directus")

// Config do gateway: endpoint e credencial bearer, injetados na construção.
type Config struct {
	BaseURL string
	Token   string
}

// Client encapsula o acesso HTTP ao Directus.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *zap.Logger
}

// NewClient cria o gateway com timeout padrão de 30s.
func NewClient(cfg Config, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

// Filtro de igualdade/desigualdade sobre um campo. Filtros são combinados
// por AND (parâmetros de query independentes); não há suporte a OR.
type Filtro struct {
	Campo    string
	Operador string // "_eq" ou "_neq"
	Valor    string
}

// Eq cria um filtro de igualdade.
func Eq(campo, valor string) Filtro { return Filtro{Campo: campo, Operador: "_eq", Valor: valor} }

// Neq cria um filtro de desigualdade.
func Neq(campo, valor string) Filtro { return Filtro{Campo: campo, Operador: "_neq", Valor: valor} }

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// ListarItens busca uma coleção inteira, aplicando os filtros na query
// string. Resposta sem campo `data` (ou erro do armazém) vira coleção
// vazia: "sem linhas" nunca é erro. out deve ser ponteiro para slice.
func (c *Client) ListarItens(ctx context.Context, colecao string, filtros []Filtro, out interface{}) error {
	endpoint := c.baseURL + "/" + colecao
	if len(filtros) > 0 {
		params := url.Values{}
		for _, f := range filtros {
			params.Add(fmt.Sprintf("filter[%s][%s]", f.Campo, f.Operador), f.Valor)
		}
		endpoint += "?" + params.Encode()
	}

	status, body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	var env envelope
	if status >= 200 && status < 300 {
		if err := json.Unmarshal(body, &env); err != nil {
			return fmt.Errorf("resposta inválida do Directus: %w", err)
		}
	} else {
		// O armazém respondeu com erro; o contrato normaliza para vazio.
		c.log.Warn("Directus respondeu erro em listagem, tratando como coleção vazia",
			zap.String("colecao", colecao), zap.Int("status", status))
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		// Garante slice vazio (e não nil) no destino.
		return json.Unmarshal([]byte("[]"), out)
	}
	return json.Unmarshal(env.Data, out)
}

// BuscarItem busca um registro por ID. Ausência vira ErrNaoEncontrado.
func (c *Client) BuscarItem(ctx context.Context, colecao, id string, out interface{}) error {
	endpoint := c.baseURL + "/" + colecao + "/" + url.PathEscape(id)

	status, body, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return ErrNaoEncontrado
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("resposta inválida do Directus: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return ErrNaoEncontrado
	}
	return json.Unmarshal(env.Data, out)
}

// CriarItem persiste um registro novo e decodifica o eco {"data": {...}}.
func (c *Client) CriarItem(ctx context.Context, colecao string, payload, out interface{}) error {
	endpoint := c.baseURL + "/" + colecao
	return c.escrever(ctx, http.MethodPost, endpoint, colecao, payload, out)
}

// AtualizarItem aplica um PATCH parcial sobre um registro existente.
func (c *Client) AtualizarItem(ctx context.Context, colecao, id string, payload, out interface{}) error {
	endpoint := c.baseURL + "/" + colecao + "/" + url.PathEscape(id)
	return c.escrever(ctx, http.MethodPatch, endpoint, colecao, payload, out)
}

func (c *Client) escrever(ctx context.Context, metodo, endpoint, colecao string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	status, resp, err := c.do(ctx, metodo, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("erro do Directus ao gravar em %s: status %d", colecao, status)
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(resp, &env); err != nil {
		return fmt.Errorf("resposta inválida do Directus: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) do(ctx context.Context, metodo, endpoint string, body io.Reader) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, metodo, endpoint, body)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("falha na requisição ao Directus: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, data, nil
}
