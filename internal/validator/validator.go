package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/tsizion/DokaBackend/internal/domain/model"
	"github.com/tsizion/DokaBackend/internal/usecase"

	playground "github.com/go-playground/validator/v10"
)

// echo.Validator の実装
type RequestValidator struct {
	v *playground.Validate
}

func New() *RequestValidator {
	v := playground.New()

	//エラーのフィールド名はJSONの名前にする
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	mustRegister(v, "delivery_status", func(fl playground.FieldLevel) bool {
		return model.DeliveryStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "payment_status", func(fl playground.FieldLevel) bool {
		return model.PaymentStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "order_delivery_status", func(fl playground.FieldLevel) bool {
		return model.OrderDeliveryStatus(fl.Field().String()).IsValid()
	})
	mustRegister(v, "admin_role", func(fl playground.FieldLevel) bool {
		return model.AdminRole(fl.Field().String()).IsValid()
	})
	mustRegister(v, "user_status", func(fl playground.FieldLevel) bool {
		return model.UserStatus(fl.Field().String()).IsValid()
	})

	return &RequestValidator{v: v}
}

func mustRegister(v *playground.Validate, tag string, fn playground.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// 失敗したら400 Validation failed（項目ごとのエラー付き）
func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}

	var ves playground.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	fields := make([]usecase.FieldError, 0, len(ves))
	for _, fe := range ves {
		fields = append(fields, usecase.FieldError{
			Field:   fieldPath(fe),
			Message: message(fe),
		})
	}
	return usecase.NewValidationError(fields...)
}

// "createProductRequest.products[0].name" -> "products[0].name"
func fieldPath(fe playground.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe playground.FieldError) string {
	f := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", f)
	case "email":
		return fmt.Sprintf("%s must be a valid email", f)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", f, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s items", f, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", f, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", f, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", f, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", f, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", f, fe.Param())
	case "delivery_status":
		return fmt.Sprintf("%s must be one of Pending, Out for Delivery, Delivered", f)
	case "payment_status":
		return fmt.Sprintf("%s must be one of Pending, Paid, Failed, Refunded", f)
	case "order_delivery_status":
		return fmt.Sprintf("%s must be one of Pending, Shipped, Delivered, Cancelled", f)
	case "admin_role":
		return fmt.Sprintf("%s must be Admin or Super Admin", f)
	case "user_status":
		return fmt.Sprintf("%s must be Active or Inactive", f)
	default:
		return fmt.Sprintf("%s is invalid", f)
	}
}
