package mercado

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

const urlSGS = "https://api.bcb.gov.br/dados/serie/bcdata.sgs.%d/dados/ultimos/1?formato=json"

// Taxas anuais fora desta faixa são tratadas como resposta corrompida.
const (
	taxaMinimaPlausivel = 0.0
	taxaMaximaPlausivel = 50.0
)

type registroSGS struct {
	Data  string `json:"data"`
	Valor string `json:"valor"`
}

// Cliente consulta as séries do SGS do Banco Central.
type Cliente struct {
	HTTP    *http.Client
	BaseURL string
}

// NewCliente cria um cliente com a URL oficial do SGS
func NewCliente(httpClient *http.Client) *Cliente {
	return &Cliente{HTTP: httpClient, BaseURL: urlSGS}
}

// BuscarSerie busca o último valor publicado de uma série e valida a faixa.
func (c *Cliente) BuscarSerie(ctx context.Context, serie int) (valor float64, data string, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(c.BaseURL, serie), nil)
	if err != nil {
		return 0, "", err
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("falha ao consultar o Banco Central: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, "", fmt.Errorf("Banco Central respondeu status %d para a série %d", resp.StatusCode, serie)
	}

	var registros []registroSGS
	if err := json.NewDecoder(resp.Body).Decode(&registros); err != nil {
		return 0, "", fmt.Errorf("resposta inválida do Banco Central: %w", err)
	}
	if len(registros) == 0 {
		return 0, "", fmt.Errorf("série %d sem dados", serie)
	}

	ultimo := registros[0]
	valor, err = strconv.ParseFloat(strings.ReplaceAll(ultimo.Valor, ",", "."), 64)
	if err != nil {
		return 0, "", fmt.Errorf("valor não numérico na série %d: %q", serie, ultimo.Valor)
	}
	if valor < taxaMinimaPlausivel || valor > taxaMaximaPlausivel {
		return 0, "", fmt.Errorf("taxa %g fora da faixa esperada para a série %d", valor, serie)
	}
	return valor, ultimo.Data, nil
}
