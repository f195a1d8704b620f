package plugin

import (
	"encoding/json"
	"strings"
)

// FieldType is the input kind of a settings or meta field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldCheckbox FieldType = "checkbox"
	FieldRadio    FieldType = "radio"
	FieldSelect   FieldType = "select"
	FieldNumber   FieldType = "number"
	FieldColor    FieldType = "color"
	FieldPassword FieldType = "password"
	FieldEmail    FieldType = "email"
	FieldURL      FieldType = "url"
	FieldDate     FieldType = "date"
	FieldTime     FieldType = "time"
	FieldFile     FieldType = "file"
	FieldImage    FieldType = "image"
	FieldWysiwyg  FieldType = "wysiwyg"
)

// AttributeType is the declared type of a shortcode attribute.
type AttributeType string

const (
	AttributeText    AttributeType = "text"
	AttributeNumber  AttributeType = "number"
	AttributeBoolean AttributeType = "boolean"
	AttributeColor   AttributeType = "color"
	AttributeURL     AttributeType = "url"
	AttributeEmail   AttributeType = "email"
	AttributeDate    AttributeType = "date"
)

// HTTPMethod is a REST route method.
type HTTPMethod string

const (
	MethodGet    HTTPMethod = "GET"
	MethodPost   HTTPMethod = "POST"
	MethodPut    HTTPMethod = "PUT"
	MethodDelete HTTPMethod = "DELETE"
	MethodPatch  HTTPMethod = "PATCH"
)

// ParameterType is the JSON schema type of a REST argument.
type ParameterType string

const (
	ParamString  ParameterType = "string"
	ParamInteger ParameterType = "integer"
	ParamNumber  ParameterType = "number"
	ParamBoolean ParameterType = "boolean"
	ParamArray   ParameterType = "array"
	ParamObject  ParameterType = "object"
)

// SQLType is a column type.
type SQLType string

const (
	SQLInt      SQLType = "int"
	SQLBigInt   SQLType = "bigint"
	SQLVarchar  SQLType = "varchar"
	SQLText     SQLType = "text"
	SQLDateTime SQLType = "datetime"
	SQLDate     SQLType = "date"
	SQLTime     SQLType = "time"
	SQLDecimal  SQLType = "decimal"
	SQLFloat    SQLType = "float"
	SQLBoolean  SQLType = "boolean"
	SQLJSON     SQLType = "json"
)

// IsInteger reports whether the type may carry AUTO_INCREMENT.
func (t SQLType) IsInteger() bool {
	switch SQLType(strings.ToLower(string(t))) {
	case SQLInt, SQLBigInt:
		return true
	default:
		return false
	}
}

// TakesLength reports whether a length or precision is rendered after the type.
func (t SQLType) TakesLength() bool {
	switch SQLType(strings.ToLower(string(t))) {
	case SQLVarchar, SQLInt, SQLBigInt, SQLDecimal:
		return true
	default:
		return false
	}
}

// Length is a column length or precision ("255", "10,2"). It decodes from
// either a JSON string or a JSON number.
type Length string

// UnmarshalJSON implements json.Unmarshaler.
func (l *Length) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = Length(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*l = Length(n.String())
	return nil
}
