// Copyright 2026 Silver Diamond
// Tests for response envelope decoding

package envelope

import (
	"reflect"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
		fields  []string
	}{
		{name: "object", body: `{"language":"es","score":1}`, fields: []string{"language", "score"}},
		{name: "empty object", body: `{}`, fields: nil},
		{name: "array body", body: `[1,2,3]`, fields: nil},
		{name: "scalar body", body: `"ok"`, fields: nil},
		{name: "null body", body: `null`, fields: nil},
		{name: "not json", body: `<html>no</html>`, wantErr: true},
		{name: "truncated", body: `{"language":`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Decode([]byte(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Decode(%q): expected error, got %v", tt.body, env)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode(%q): %v", tt.body, err)
			}
			for _, f := range tt.fields {
				if !env.Has(f) {
					t.Errorf("field %q missing", f)
				}
			}
			if len(env) != len(tt.fields) {
				t.Errorf("field count: got %d, want %d", len(env), len(tt.fields))
			}
		})
	}
}

func TestErrorText(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantText string
		wantOK   bool
	}{
		{name: "message", body: `{"message":"Invalid API key"}`, wantText: "Invalid API key", wantOK: true},
		{name: "error", body: `{"error":"quota exceeded"}`, wantText: "quota exceeded", wantOK: true},
		{name: "message wins", body: `{"error":"b","message":"a"}`, wantText: "a", wantOK: true},
		{name: "empty message still fails", body: `{"message":""}`, wantText: "", wantOK: true},
		{name: "null message still fails", body: `{"message":null}`, wantText: "null", wantOK: true},
		{name: "non-string error", body: `{"error":{"code":5}}`, wantText: `{"code":5}`, wantOK: true},
		{name: "clean response", body: `{"language":"es"}`, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Decode([]byte(tt.body))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			text, ok := env.ErrorText()
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if text != tt.wantText {
				t.Errorf("text: got %q, want %q", text, tt.wantText)
			}
		})
	}
}

func TestString(t *testing.T) {
	env, err := Decode([]byte(`{"language":"es","score":7,"alt":null}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s, ok := env.String("language"); !ok || s != "es" {
		t.Errorf("language: got %q, %v", s, ok)
	}
	if _, ok := env.String("score"); ok {
		t.Error("number should not decode as string")
	}
	if _, ok := env.String("alt"); ok {
		t.Error("null should not decode as string")
	}
	if _, ok := env.String("missing"); ok {
		t.Error("absent field should not decode")
	}
}

func TestFloat(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		field  string
		want   float64
		wantOK bool
	}{
		{name: "number", body: `{"similarity":0.82}`, field: "similarity", want: 0.82, wantOK: true},
		{name: "integer", body: `{"spamScore":7}`, field: "spamScore", want: 7, wantOK: true},
		{name: "numeric string", body: `{"spamScore":"7.5"}`, field: "spamScore", want: 7.5, wantOK: true},
		{name: "padded numeric string", body: `{"score":" 42.25 "}`, field: "score", want: 42.25, wantOK: true},
		{name: "non-numeric string", body: `{"spamScore":"high"}`, field: "spamScore", wantOK: false},
		{name: "null", body: `{"spamScore":null}`, field: "spamScore", wantOK: false},
		{name: "bool", body: `{"spamScore":true}`, field: "spamScore", wantOK: false},
		{name: "absent", body: `{}`, field: "spamScore", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Decode([]byte(tt.body))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			got, ok := env.Float(tt.field)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("value: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFloatOr(t *testing.T) {
	env, err := Decode([]byte(`{"spamScore":"oops","probability":0.93}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := env.FloatOr("spamScore", 0); got != 0 {
		t.Errorf("unparsable: got %v, want 0", got)
	}
	if got := env.FloatOr("missing", 0); got != 0 {
		t.Errorf("absent: got %v, want 0", got)
	}
	if got := env.FloatOr("probability", 0); got != 0.93 {
		t.Errorf("present: got %v, want 0.93", got)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
		want  bool
	}{
		{name: "true", body: `{"spam":true}`, field: "spam", want: true},
		{name: "false", body: `{"spam":false}`, field: "spam", want: false},
		{name: "one", body: `{"spam":1}`, field: "spam", want: true},
		{name: "zero", body: `{"spam":0}`, field: "spam", want: false},
		{name: "nonempty string", body: `{"spam":"yes"}`, field: "spam", want: true},
		{name: "empty string", body: `{"spam":""}`, field: "spam", want: false},
		{name: "null", body: `{"spam":null}`, field: "spam", want: false},
		{name: "absent", body: `{}`, field: "spam", want: false},
		{name: "object", body: `{"spam":{"a":1}}`, field: "spam", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Decode([]byte(tt.body))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got := env.Truthy(tt.field); got != tt.want {
				t.Errorf("Truthy(%s): got %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		field  string
		want   []string
		wantOK bool
	}{
		{name: "list", body: `{"keywords":["go","api"]}`, field: "keywords", want: []string{"go", "api"}, wantOK: true},
		{name: "empty list", body: `{"keywords":[]}`, field: "keywords", want: []string{}, wantOK: true},
		{name: "not a list", body: `{"keywords":"go"}`, field: "keywords", wantOK: false},
		{name: "mixed elements", body: `{"keywords":["go",1]}`, field: "keywords", wantOK: false},
		{name: "null", body: `{"keywords":null}`, field: "keywords", wantOK: false},
		{name: "absent", body: `{}`, field: "keywords", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, err := Decode([]byte(tt.body))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			got, ok := env.Strings(tt.field)
			if ok != tt.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tt.wantOK)
			}
			if ok && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("value: got %v, want %v", got, tt.want)
			}
		})
	}
}
