package prompts_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/taskpoint/assist/internal/prompts"
)

func TestParseStage(t *testing.T) {
	for _, stage := range prompts.Stages() {
		got, err := prompts.ParseStage(string(stage))
		if err != nil {
			t.Errorf("ParseStage(%s) error: %v", stage, err)
		}
		if got != stage {
			t.Errorf("ParseStage(%s) = %s", stage, got)
		}
	}

	if _, err := prompts.ParseStage("render"); !errors.Is(err, prompts.ErrInvalidStage) {
		t.Errorf("error = %v, want ErrInvalidStage", err)
	}
}

func TestStageUnmarshalJSON(t *testing.T) {
	t.Run("valid stage", func(t *testing.T) {
		var s prompts.Stage
		if err := json.Unmarshal([]byte(`"classify"`), &s); err != nil {
			t.Fatalf("unmarshal error: %v", err)
		}
		if s != prompts.StageClassify {
			t.Errorf("stage = %s, want classify", s)
		}
	})

	t.Run("invalid stage rejected", func(t *testing.T) {
		var s prompts.Stage
		err := json.Unmarshal([]byte(`"finalize"`), &s)
		if !errors.Is(err, prompts.ErrInvalidStage) {
			t.Errorf("error = %v, want ErrInvalidStage", err)
		}
	})
}

func TestDefaults(t *testing.T) {
	for _, stage := range prompts.Stages() {
		instructions, err := prompts.Instructions(stage)
		if err != nil {
			t.Fatalf("Instructions(%s) error: %v", stage, err)
		}
		if instructions == "" {
			t.Errorf("Instructions(%s) is empty", stage)
		}

		spec, err := prompts.Specs(stage)
		if err != nil {
			t.Fatalf("Specs(%s) error: %v", stage, err)
		}
		if spec == "" {
			t.Errorf("Specs(%s) is empty", stage)
		}
	}

	if _, err := prompts.Instructions(prompts.Stage("bogus")); !errors.Is(err, prompts.ErrInvalidStage) {
		t.Errorf("error = %v, want ErrInvalidStage", err)
	}
	if _, err := prompts.Specs(prompts.Stage("bogus")); !errors.Is(err, prompts.ErrInvalidStage) {
		t.Errorf("error = %v, want ErrInvalidStage", err)
	}
}

func TestClassifySpecNamesEveryIntent(t *testing.T) {
	spec, err := prompts.Specs(prompts.StageClassify)
	if err != nil {
		t.Fatalf("Specs error: %v", err)
	}

	for _, tag := range []string{"bank_hours", "next_vacation", "absent_employees", "today_schedule", "unknown"} {
		if !strings.Contains(spec, tag) {
			t.Errorf("classify spec missing intent tag %q", tag)
		}
	}
}
