package simulacao

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerSimularOK(t *testing.T) {
	corpo := `{
		"modalidade": "CDI_PERCENTUAL",
		"modo": "NORMAL",
		"horizonteDias": 360,
		"valorConhecido": 10000,
		"benchmark": 0.1265,
		"percentual": 110
	}`
	req := httptest.NewRequest(http.MethodPost, "/simulacoes", strings.NewReader(corpo))
	rec := httptest.NewRecorder()
	NewHandler().Simular(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var res ResultadoSimulacao
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Modalidade != ModalidadeCDI || res.Modo != ModoNormal {
		t.Errorf("eco da requisição incorreto: %s %s", res.Modalidade, res.Modo)
	}
	if res.AliquotaIR != 0.20 {
		t.Errorf("alíquota %v, esperado 0.20", res.AliquotaIR)
	}
	if !res.ValorFinal.GreaterThan(res.Principal) {
		t.Errorf("valor final %s deveria superar o principal %s", res.ValorFinal, res.Principal)
	}
}

func TestHandlerSimularErros(t *testing.T) {
	casos := []struct {
		nome   string
		corpo  string
		status int
	}{
		{"JSON quebrado", `{"modalidade":`, http.StatusBadRequest},
		{"valor não positivo", `{"modalidade":"CDI_PERCENTUAL","horizonteDias":360,"valorConhecido":0}`, http.StatusBadRequest},
		{"modalidade desconhecida", `{"modalidade":"NFT","horizonteDias":360,"valorConhecido":100}`, http.StatusBadRequest},
		{"horizonte zero", `{"modalidade":"PERSONALIZADA","taxaNominal":0.1,"horizonteDias":0,"valorConhecido":100}`, http.StatusBadRequest},
		{"prazo acima do teto", `{"modalidade":"PERSONALIZADA","taxaNominal":0.1,"horizonteDias":99999,"valorConhecido":100}`, http.StatusUnprocessableEntity},
		{"reverso com taxa zero", `{"modalidade":"PERSONALIZADA","modo":"REVERSO","taxaNominal":0,"horizonteDias":365,"valorConhecido":100,"alvoLiquido":true}`, http.StatusUnprocessableEntity},
	}
	h := NewHandler()
	for _, c := range casos {
		req := httptest.NewRequest(http.MethodPost, "/simulacoes", strings.NewReader(c.corpo))
		rec := httptest.NewRecorder()
		h.Simular(rec, req)
		if rec.Code != c.status {
			t.Errorf("%s: status %d, esperado %d (%s)", c.nome, rec.Code, c.status, strings.TrimSpace(rec.Body.String()))
		}
	}
}

func TestHandlerListarModalidades(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/modalidades", nil)
	rec := httptest.NewRecorder()
	NewHandler().ListarModalidades(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var lista []ModalidadeListada
	if err := json.Unmarshal(rec.Body.Bytes(), &lista); err != nil {
		t.Fatal(err)
	}
	if len(lista) != len(Catalogo) {
		t.Fatalf("%d modalidades, esperado %d", len(lista), len(Catalogo))
	}
	for i := 1; i < len(lista); i++ {
		if lista[i-1].Codigo >= lista[i].Codigo {
			t.Fatalf("lista fora de ordem: %s depois de %s", lista[i].Codigo, lista[i-1].Codigo)
		}
	}
}
