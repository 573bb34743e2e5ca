package helpers

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s es obligatorio.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s debe ser un correo válido.", err.Field())
		case "numeric":
			errorMessages[field] = fmt.Sprintf("%s debe ser numérico.", err.Field())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s requiere un mínimo de %s.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s permite un máximo de %s.", err.Field(), err.Param())
		case "gte":
			errorMessages[field] = fmt.Sprintf("%s no puede ser menor que %s.", err.Field(), err.Param())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s debe ser uno de: %s.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("Validación %s falló en el campo %s.", err.Tag(), err.Field())
		}
	}
	return errorMessages
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {

		log.Printf("PasswordCompare: password does not match or error: %v", err)
		return false
	}
	return true
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}
