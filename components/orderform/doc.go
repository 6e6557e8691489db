// Package orderform serves the pizza order form over net/http.
//
// The handler renders the form on GET, accepts a urlencoded submission on
// POST, and answers live revalidation requests on the validate sub-route
// with a JSON view. Every request drives its own controller, so no form
// state is shared between requests.
package orderform
