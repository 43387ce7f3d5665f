package codec

import (
	"reflect"
	"testing"
)

func TestJSONRoundTrip(t *testing.T) {
	in := map[string]interface{}{"method": "initialize", "id": float64(1)}
	data, err := Marshal(MediaTypeJSON, in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]interface{}
	if err := Unmarshal(MediaTypeJSON, data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip = %#v, want %#v", out, in)
	}
}

func TestJSONMarshalSortsKeys(t *testing.T) {
	data, err := Marshal(MediaTypeJSON, map[string]interface{}{
		"method":  "initialize",
		"id":      1,
		"jsonrpc": "2.0",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":1,"jsonrpc":"2.0","method":"initialize"}`
	if string(data) != want {
		t.Errorf("marshal = %s, want %s", data, want)
	}
}

func TestMessagePackRoundTrip(t *testing.T) {
	in := map[string]interface{}{"method": "shutdown"}
	data, err := Marshal(MediaTypeMessagePack, in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out map[string]interface{}
	if err := Unmarshal(MediaTypeMessagePack, data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["method"] != "shutdown" {
		t.Errorf("round trip = %#v", out)
	}
}

func TestUnknownMediaTypeFallsBackToJSON(t *testing.T) {
	var out map[string]interface{}
	err := Unmarshal("application/vscode-jsonrpc", []byte(`{"id":1}`), &out)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out["id"] != float64(1) {
		t.Errorf("fallback decode = %#v", out)
	}
}
