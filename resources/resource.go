/*
Package resources builds typed JSON:API operations on top of the request engine.

A Resource[A] binds a type tag and a collection path, for example "Person" at
/people/v2/people, and offers list, get, create, update, delete and action calls whose
results decode into Entity[A]. Query strings are built from ListOptions and GetOptions
and validated before anything is sent.
*/
package resources

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/httpclient"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/response"
)

// Requester is the part of *httpclient.Client that resources depend on.
type Requester interface {
	Request(ctx context.Context, method, path string, body any, opts *httpclient.RequestOptions) (*response.Envelope, error)
}

// Option configures a Resource.
type Option func(*settings)

type settings struct {
	defaultPerPage int
	validIncludes  []string
}

// WithDefaultPerPage sets the page size sent when ListOptions.PerPage is nil.
// Zero sends no per_page unless one is given.
func WithDefaultPerPage(n int) Option {
	return func(s *settings) { s.defaultPerPage = n }
}

// WithIncludes restricts include values to the given names.
func WithIncludes(names ...string) Option {
	return func(s *settings) { s.validIncludes = names }
}

// Resource is a collection endpoint whose members have attributes of type A.
type Resource[A any] struct {
	client   Requester
	typeTag  string
	basePath string
	settings settings
	// err is reported by every call, e.g. when a parent id was missing.
	err error
}

// New returns a Resource for the collection at basePath.
func New[A any](client Requester, typeTag, basePath string, opts ...Option) *Resource[A] {
	s := settings{defaultPerPage: DefaultPerPage}
	for _, opt := range opts {
		opt(&s)
	}
	return &Resource[A]{client: client, typeTag: typeTag, basePath: strings.TrimRight(basePath, "/"), settings: s}
}

// Nested returns a Resource for a collection under a parent, such as
// /people/v2/people/{personID}/workflow_cards. An empty parentID makes every call fail
// with a ValidationError naming parentField.
func Nested[A any](client Requester, typeTag, parentPath, parentField, parentID, collection string, opts ...Option) *Resource[A] {
	r := New[A](client, typeTag, JoinPath(parentPath, parentID, collection), opts...)
	r.err = RequireID(parentField, parentID)
	return r
}

// TypeTag returns the JSON:API type written into request bodies.
func (r *Resource[A]) TypeTag() string { return r.typeTag }

// Path returns the collection path.
func (r *Resource[A]) Path() string { return r.basePath }

// MemberPath returns the path of a single member.
func (r *Resource[A]) MemberPath(id string) string { return JoinPath(r.basePath, id) }

// List fetches the collection.
func (r *Resource[A]) List(ctx context.Context, opts *ListOptions) (*Document[[]Entity[A]], error) {
	return r.ListAt(ctx, r.basePath, opts)
}

// ListAt fetches a collection of A at another path, such as a relationship endpoint.
func (r *Resource[A]) ListAt(ctx context.Context, path string, opts *ListOptions) (*Document[[]Entity[A]], error) {
	if r.err != nil {
		return nil, r.err
	}
	return listWith[A](ctx, r.client, path, opts, r.settings)
}

// Get fetches one member.
func (r *Resource[A]) Get(ctx context.Context, id string, opts *GetOptions) (*Document[Entity[A]], error) {
	if err := r.check(id); err != nil {
		return nil, err
	}
	encoded, err := buildGetQuery(opts, r.settings.validIncludes)
	if err != nil {
		return nil, err
	}
	return send[Entity[A]](ctx, r.client, http.MethodGet, withQuery(r.MemberPath(id), encoded), nil)
}

// Create posts a new member built from attributes.
func (r *Resource[A]) Create(ctx context.Context, attributes any) (*Document[Entity[A]], error) {
	if r.err != nil {
		return nil, r.err
	}
	return send[Entity[A]](ctx, r.client, http.MethodPost, r.basePath, NewBody(r.typeTag, "", attributes))
}

// Update patches the member with the given attributes.
func (r *Resource[A]) Update(ctx context.Context, id string, attributes any) (*Document[Entity[A]], error) {
	if err := r.check(id); err != nil {
		return nil, err
	}
	return send[Entity[A]](ctx, r.client, http.MethodPatch, r.MemberPath(id), NewBody(r.typeTag, id, attributes))
}

// Delete removes the member.
func (r *Resource[A]) Delete(ctx context.Context, id string) error {
	if err := r.check(id); err != nil {
		return err
	}
	_, err := r.client.Request(ctx, http.MethodDelete, r.MemberPath(id), nil, nil)
	return err
}

// Action posts to a member action such as /promote. attributes, when non-nil, is sent as
// {"data":{"attributes":...}}. Actions that answer 204 return a Document with zero Data.
func (r *Resource[A]) Action(ctx context.Context, id, action string, attributes any) (*Document[Entity[A]], error) {
	if err := r.check(id); err != nil {
		return nil, err
	}
	var body any
	if attributes != nil {
		body = NewBody("", "", attributes)
	}
	return send[Entity[A]](ctx, r.client, http.MethodPost, JoinPath(r.MemberPath(id), action), body)
}

func (r *Resource[A]) check(id string) error {
	if r.err != nil {
		return r.err
	}
	return RequireID("id", id)
}

// Under returns a Resource of type B for the collection beneath member id of parent, such
// as /people/v2/workflows/{id}/steps. A parent error or an empty id is reported by every
// call, with the id failure naming parentField.
func Under[B, A any](parent *Resource[A], typeTag, parentField, id, collection string, opts ...Option) *Resource[B] {
	r := Nested[B](parent.client, typeTag, parent.basePath, parentField, id, collection, opts...)
	if parent.err != nil {
		r.err = parent.err
	}
	return r
}

// GetRelated fetches the single B related to member id of parent, for example
// /people/v2/notes/{id}/category.
func GetRelated[B, A any](ctx context.Context, parent *Resource[A], id, relation string, opts *GetOptions) (*Document[Entity[B]], error) {
	if err := parent.check(id); err != nil {
		return nil, err
	}
	return Related[B](ctx, parent.client, JoinPath(parent.MemberPath(id), relation), opts)
}

// Related fetches a single related resource of type B at path.
func Related[B any](ctx context.Context, client Requester, path string, opts *GetOptions) (*Document[Entity[B]], error) {
	encoded, err := buildGetQuery(opts, nil)
	if err != nil {
		return nil, err
	}
	return send[Entity[B]](ctx, client, http.MethodGet, withQuery(path, encoded), nil)
}

// RelatedList fetches a related collection of type B at path with the default page size.
func RelatedList[B any](ctx context.Context, client Requester, path string, opts *ListOptions) (*Document[[]Entity[B]], error) {
	return listWith[B](ctx, client, path, opts, settings{defaultPerPage: DefaultPerPage})
}

// CreateAt posts a new resource of type B to path, for collections created under a parent.
func CreateAt[B any](ctx context.Context, client Requester, typeTag, path string, attributes any) (*Document[Entity[B]], error) {
	return send[Entity[B]](ctx, client, http.MethodPost, path, NewBody(typeTag, "", attributes))
}

func listWith[B any](ctx context.Context, client Requester, path string, opts *ListOptions, s settings) (*Document[[]Entity[B]], error) {
	encoded, err := buildListQuery(opts, s.defaultPerPage, s.validIncludes)
	if err != nil {
		return nil, err
	}
	var requestOpts *httpclient.RequestOptions
	if opts != nil && opts.AutoPaginate != nil {
		requestOpts = &httpclient.RequestOptions{AutoPaginate: opts.AutoPaginate}
	}
	envelope, err := client.Request(ctx, http.MethodGet, withQuery(path, encoded), nil, requestOpts)
	if err != nil {
		return nil, err
	}
	return decodeDocument[[]Entity[B]](envelope)
}

func send[T any](ctx context.Context, client Requester, method, path string, body any) (*Document[T], error) {
	envelope, err := client.Request(ctx, method, path, body, nil)
	if err != nil {
		return nil, err
	}
	return decodeDocument[T](envelope)
}

// JoinPath joins path segments with "/", escaping each segment after the first.
func JoinPath(base string, segments ...string) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight(base, "/"))
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
