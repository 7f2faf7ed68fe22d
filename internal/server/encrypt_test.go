package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEncryptHandler(t *testing.T) {
	h := encryptHandler()

	post := func(t *testing.T, body string) *httptest.ResponseRecorder {
		t.Helper()
		r := httptest.NewRequest(http.MethodPost, "/encrypt", strings.NewReader(body))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	t.Run("ok", func(t *testing.T) {
		w := post(t, `{"word":"play"}`)
		if have, want := w.Code, http.StatusOK; have != want {
			t.Fatalf("status %d, want %d", have, want)
		}

		var resp encryptResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if have, want := resp.Encrypted, "sodb"; have != want {
			t.Errorf("encrypted %q, want %q", have, want)
		}
		if have, want := resp.Word, "play"; have != want {
			t.Errorf("word %q, want %q", have, want)
		}
	})

	t.Run("empty word", func(t *testing.T) {
		w := post(t, `{"word":""}`)
		if have, want := w.Code, http.StatusOK; have != want {
			t.Fatalf("status %d, want %d", have, want)
		}

		var resp encryptResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if have, want := resp.Encrypted, ""; have != want {
			t.Errorf("encrypted %q, want %q", have, want)
		}
	})

	t.Run("invalid character", func(t *testing.T) {
		w := post(t, `{"word":"Play"}`)
		if have, want := w.Code, http.StatusUnprocessableEntity; have != want {
			t.Fatalf("status %d, want %d", have, want)
		}

		var resp errorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Error == "" {
			t.Error("empty error message")
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		w := post(t, `not json`)
		if have, want := w.Code, http.StatusBadRequest; have != want {
			t.Fatalf("status %d, want %d", have, want)
		}
	})
}

func TestRecoverMiddleware(t *testing.T) {
	h := recoverMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	if have, want := w.Code, http.StatusInternalServerError; have != want {
		t.Fatalf("status %d, want %d", have, want)
	}
}
