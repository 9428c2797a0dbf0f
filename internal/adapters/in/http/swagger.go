package http

import (
	"sync"

	"github.com/qlimaxx/pizza-ordering-api/internal/generated/servers"

	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

var (
	registerDocOnce sync.Once
	registerDocErr  error
)

// registerOpenAPIDoc hands the embedded document to swag so echo-swagger can
// serve it as /swagger/doc.json. swag panics on double registration.
func registerOpenAPIDoc() error {
	registerDocOnce.Do(func() {
		spec, err := servers.GetSwagger()
		if err != nil {
			registerDocErr = err
			return
		}
		data, err := spec.MarshalJSON()
		if err != nil {
			registerDocErr = err
			return
		}
		swag.Register(swag.Name, openAPIDoc{json: string(data)})
	})
	return registerDocErr
}

var swaggerHandler = echoSwagger.WrapHandler
