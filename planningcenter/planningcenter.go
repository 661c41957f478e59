// planningcenter/planningcenter.go

/*
Package planningcenter is the entry point of the SDK. New builds one request engine
and exposes every Planning Center app on top of it:

	client, err := planningcenter.New(httpclient.ClientConfig{
		Auth: &authenticationhandler.BasicCredentials{ClientID: id, ClientSecret: secret},
	})
	if err != nil {
		return err
	}
	people, err := client.People.People.List(ctx, nil)
*/
package planningcenter

import (
	"github.com/deploymenttheory/go-api-sdk-planningcenter/httpclient"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/services/calendar"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/services/groups"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/services/home"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/services/people"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/services/publishing"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/services/registrations"
)

// Client exposes each app. All apps share HTTP, so spacing, retries, token refresh and
// the concurrency limit apply across them.
type Client struct {
	HTTP *httpclient.Client

	People        *people.Service
	Groups        *groups.Service
	Calendar      *calendar.Service
	Home          *home.Service
	Publishing    *publishing.Service
	Registrations *registrations.Service
}

// New builds the request engine from config and binds every app to it. Errors are the
// *httpclient.ConfigurationError values BuildClient returns.
func New(config httpclient.ClientConfig, opts ...httpclient.Option) (*Client, error) {
	engine, err := httpclient.BuildClient(config, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{
		HTTP:          engine,
		People:        people.New(engine),
		Groups:        groups.New(engine),
		Calendar:      calendar.New(engine),
		Home:          home.New(engine),
		Publishing:    publishing.New(engine),
		Registrations: registrations.New(engine),
	}, nil
}
