package conf

import (
	"encoding/json"

	E "github.com/sagernet/sing-http/common/exceptions"
	"github.com/sagernet/sing-http/protocol/http"
)

// HeaderList is written as an array of [name, value] pairs so that order and
// repeated names survive a round trip.
type HeaderList []http.Header

func (l HeaderList) MarshalJSON() ([]byte, error) {
	pairs := make([][2]string, len(l))
	for i, header := range l {
		pairs[i] = [2]string{header.Name, header.Value}
	}
	return json.Marshal(pairs)
}

func (l *HeaderList) UnmarshalJSON(content []byte) error {
	var pairs [][]string
	err := json.Unmarshal(content, &pairs)
	if err != nil {
		return err
	}
	list := make(HeaderList, 0, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return E.New("header #", i, ": expected [name, value], got ", len(pair), " elements")
		}
		list = append(list, http.Header{Name: pair[0], Value: pair[1]})
	}
	*l = list
	return nil
}

func (l HeaderList) Build() *http.Headers {
	return http.NewHeaders(l...)
}
