package models

import "testing"

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(s *Settings) {}},
		{name: "custom defaults", mutate: func(s *Settings) {
			s.Defaults.Property = "opacity"
			s.Defaults.Timing = "cubic-bezier(0.4, 0, 0.2, 1)"
		}},
		{name: "bad log level", mutate: func(s *Settings) { s.Log.Level = "shouty" }, wantErr: true},
		{name: "bad duration", mutate: func(s *Settings) { s.Defaults.Duration = "fast" }, wantErr: true},
		{name: "easing keyword as property", mutate: func(s *Settings) { s.Defaults.Property = "linear" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			tt.mutate(settings)
			err := settings.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSettings_TransitionDefaults(t *testing.T) {
	settings := DefaultSettings()
	settings.Defaults.Duration = "250ms"

	defaults, err := settings.TransitionDefaults()
	if err != nil {
		t.Fatalf("TransitionDefaults failed: %v", err)
	}
	if got := defaults.Duration.String(); got != "250ms" {
		t.Errorf("duration = %q, expected %q", got, "250ms")
	}
	if got := defaults.Timing.String(); got != "ease" {
		t.Errorf("timing = %q, expected %q", got, "ease")
	}
}
