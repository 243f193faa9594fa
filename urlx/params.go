/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package urlx

// Params is a view over the query component's key[=value] pairs, per
// spec.md §4.3's query-params grammar.
type Params struct {
	u *Container
}

// QueryParams returns a Params view over u's current query.
func (u *Container) QueryParams() Params { return Params{u: u} }

// Len returns the number of query parameters, matching the cached nparam field.
func (p Params) Len() int { return p.u.nparam }

// At returns the encoded key, encoded value, and whether an '=' was present
// for the parameter at pos.
func (p Params) At(pos int) (key, value string, hasValue bool) {
	params := splitQueryParams(p.u.Query())
	pp := params[pos]
	return pp.Key, pp.Value, pp.HasValue
}

// All returns every parameter in order.
func (p Params) All() []queryParam { return splitQueryParams(p.u.Query()) }

// Count returns the number of parameters whose encoded key equals key.
func (p Params) Count(key string) int {
	n := 0
	for _, pp := range splitQueryParams(p.u.Query()) {
		if pp.Key == key {
			n++
		}
	}
	return n
}

// Get returns the encoded value of the first parameter whose key equals key,
// and whether any such parameter exists.
func (p Params) Get(key string) (string, bool) {
	for _, pp := range splitQueryParams(p.u.Query()) {
		if pp.Key == key {
			return pp.Value, true
		}
	}
	return "", false
}

// Insert adds a raw key[=value] pair before pos, percent-encoding key/value
// as needed.
func (p Params) Insert(pos int, key, value string, hasValue bool) error {
	return p.InsertEncoded(pos, encodeQueryParam(key), encodeQueryParam(value), hasValue)
}

// encodeQueryParam percent-encodes a raw key or value with the query
// alphabet minus the '&' and '=' separators.
func encodeQueryParam(raw string) string {
	allowed := tableQueryChar
	allowed['&'] = false
	allowed['='] = false
	return encodeComponent(raw, &allowed)
}

// InsertEncoded adds an already-encoded key[=value] pair before pos.
func (p Params) InsertEncoded(pos int, key, value string, hasValue bool) error {
	if err := validateQueryParamChars(key); err != nil {
		return newParseError(err)
	}
	if hasValue {
		if err := validateQueryParamChars(value); err != nil {
			return newParseError(err)
		}
	}
	params := splitQueryParams(p.u.Query())
	if pos < 0 || pos > len(params) {
		return newParseError(newKindError(KindInvalid, 0, "param insert position out of range"))
	}
	np := queryParam{Key: key, Value: value, HasValue: hasValue}
	params = append(params[:pos:pos], append([]queryParam{np}, params[pos:]...)...)
	return p.commit(params)
}

// Replace overwrites the parameter at pos.
func (p Params) Replace(pos int, key, value string, hasValue bool) error {
	return p.ReplaceEncoded(pos, encodeQueryParam(key), encodeQueryParam(value), hasValue)
}

// ReplaceEncoded overwrites the parameter at pos with already-encoded text.
func (p Params) ReplaceEncoded(pos int, key, value string, hasValue bool) error {
	if err := validateQueryParamChars(key); err != nil {
		return newParseError(err)
	}
	if hasValue {
		if err := validateQueryParamChars(value); err != nil {
			return newParseError(err)
		}
	}
	params := splitQueryParams(p.u.Query())
	if pos < 0 || pos >= len(params) {
		return newParseError(newKindError(KindInvalid, 0, "param replace position out of range"))
	}
	params[pos] = queryParam{Key: key, Value: value, HasValue: hasValue}
	return p.commit(params)
}

// Erase removes the parameter at pos.
func (p Params) Erase(pos int) error {
	params := splitQueryParams(p.u.Query())
	if pos < 0 || pos >= len(params) {
		return newParseError(newKindError(KindInvalid, 0, "param erase position out of range"))
	}
	params = append(params[:pos], params[pos+1:]...)
	return p.commit(params)
}

// EraseRange removes the half-open range of parameters [from, to).
func (p Params) EraseRange(from, to int) error {
	params := splitQueryParams(p.u.Query())
	if from < 0 || to > len(params) || from > to {
		return newParseError(newKindError(KindInvalid, 0, "param erase range out of range"))
	}
	params = append(params[:from], params[to:]...)
	return p.commit(params)
}

// commit rebuilds the query from params and splices it into the owning
// Container's query component.
func (p Params) commit(params []queryParam) error {
	newQuery := joinQueryParams(params)
	p.u.splice(compQuery, []byte("?"+newQuery))
	p.u.refreshDerived()
	return nil
}
