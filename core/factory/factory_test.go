package factory

import "testing"

type sink struct{ Limit int }

func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*sink]()
	err := reg.Register("bounded", func(conf map[string]any) (*sink, error) {
		var c struct {
			Limit int `json:"limit"`
		}
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sink{Limit: c.Limit}, nil
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	inst, err := reg.Create(ModuleConfig{Type: "bounded", Conf: map[string]any{"limit": 5}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inst.Limit != 5 {
		t.Fatalf("expected 5 got %d", inst.Limit)
	}
}

func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	if err := reg.Register("x", func(map[string]any) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("x", nil); err == nil {
		t.Fatal("expected duplicate error")
	}
	if _, err := reg.Create(ModuleConfig{Type: "y"}); err == nil {
		t.Fatal("expected unknown type error")
	}
}
