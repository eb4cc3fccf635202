package usecase

import (
	"errors"
	"testing"

	"github.com/shoplens/backend/internal/domain"
)

func TestExtractJSON(t *testing.T) {
	type payload struct {
		Category string `json:"category"`
	}

	cases := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare object", raw: `{"category":"tv"}`, want: "tv"},
		{name: "surrounding whitespace", raw: "\n  {\"category\":\"tv\"}  \n", want: "tv"},
		{name: "fenced with tag", raw: "```json\n{\"category\":\"tv\"}\n```", want: "tv"},
		{name: "fenced without tag", raw: "```\n{\"category\":\"tv\"}\n```", want: "tv"},
		{name: "fence never closed", raw: "```json\n{\"category\":\"tv\"}", want: "tv"},
		{name: "prose instead of JSON", raw: "here you go!", wantErr: true},
		{name: "empty response", raw: "", wantErr: true},
		{name: "truncated object", raw: `{"category":"tv`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got payload
			err := extractJSON(tc.raw, &got)
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				if !errors.Is(err, domain.ErrMalformedResponse) {
					t.Errorf("error = %v, want ErrMalformedResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Category != tc.want {
				t.Errorf("category = %q, want %q", got.Category, tc.want)
			}
		})
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  ```json\n{\"a\":1}\n```  ", "{\"a\":1}"},
	}
	for _, tc := range cases {
		if got := stripCodeFence(tc.in); got != tc.want {
			t.Errorf("stripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
