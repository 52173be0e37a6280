package internal

import "reflect"

var ErrorType = reflect.TypeOf((*error)(nil)).Elem()
