package rule_test

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/yeisme/assetvault/pkg/rule"
)

// submitForm 模拟上传表单的校验规则.
type submitForm struct {
	Title    string `rule:"required,max=255"`
	Category string `rule:"required,oneof=logo moveus fon text art"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	valid := submitForm{Title: "Team logo", Category: "logo"}

	if err := rule.ValidateStruct(valid); err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 缺少标题
	missingTitle := submitForm{Title: "", Category: "logo"}
	if err := rule.ValidateStruct(missingTitle); err == nil {
		t.Error("Expected error for missing title, got nil")
	}

	// 分类不在词汇表内
	badCategory := submitForm{Title: "Team logo", Category: "banner"}
	if err := rule.ValidateStruct(badCategory); err == nil {
		t.Error("Expected error for unknown category, got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	if err := rule.ValidateVar("approved", "oneof=pending approved rejected"); err != nil {
		t.Errorf("Expected no error for valid status, got %v", err)
	}

	if err := rule.ValidateVar("published", "oneof=pending approved rejected"); err == nil {
		t.Error("Expected error for unknown status, got nil")
	}
}

// TestRegisterValidation 测试注册自定义验证.
func TestRegisterValidation(t *testing.T) {
	// 注册自定义验证：对象键必须带扩展名
	err := rule.RegisterValidation("has_ext", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		for i := len(str) - 1; i > 0; i-- {
			if str[i] == '.' {
				return i < len(str)-1
			}
		}

		return false
	})
	if err != nil {
		t.Fatalf("Failed to register validation: %v", err)
	}

	if err = rule.ValidateVar("01J0000000000000000000000.png", "has_ext"); err != nil {
		t.Errorf("Expected no error for keyed object name, got %v", err)
	}

	if err = rule.ValidateVar("01J0000000000000000000000", "has_ext"); err == nil {
		t.Error("Expected error for object name without extension, got nil")
	}
}

// TestRegisterAlias 测试注册别名.
func TestRegisterAlias(t *testing.T) {
	rule.RegisterAlias("asset_title", "required,min=1,max=255")

	if err := rule.ValidateVar("logo", "asset_title"); err != nil {
		t.Errorf("Expected no error for valid title with alias, got %v", err)
	}

	if err := rule.ValidateVar("", "asset_title"); err == nil {
		t.Error("Expected error for empty title with alias, got nil")
	}
}
