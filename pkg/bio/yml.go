package bio

import (
	"fmt"
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes how to read a table of transactions and the
defaults for a mining run.

Identifier is the name of the column holding transaction identifiers;
the first column is used when empty. Items, when not empty, restricts
the universe to the given columns in the given order. Support and
Confidence are the default thresholds, kept as text so they can be
parsed exactly.
*/
type Metadata struct {
	Identifier string
	Items      []string
	Support    string
	Confidence string
}

/*
ReadYMLMetadata takes a slice of bytes with metadata in YML and returns
the Metadata parsed from it or an error.
The YML is expected to be an object with any of the identifier, items,
support and confidence properties. Items must be a list, the rest are
scalars.
*/
func ReadYMLMetadata(md []byte) (*Metadata, error) {
	raw := struct {
		Identifier interface{}
		Items      []interface{}
		Support    interface{}
		Confidence interface{}
	}{}
	err := yaml.Unmarshal(md, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	metadata := &Metadata{
		Identifier: scalarString(raw.Identifier),
		Support:    scalarString(raw.Support),
		Confidence: scalarString(raw.Confidence),
	}
	seen := make(map[string]bool)
	for _, v := range raw.Items {
		item := scalarString(v)
		if item == "" {
			return nil, fmt.Errorf("parsing yml metadata: empty item name")
		}
		if seen[item] {
			return nil, fmt.Errorf("parsing yml metadata: item %s listed twice", item)
		}
		seen[item] = true
		metadata.Items = append(metadata.Items, item)
	}
	return metadata, nil
}

/*
ReadYMLMetadataFromFile takes a filepath string, reads its contents and uses
ReadYMLMetadata to parse it and return the Metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadYMLMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	metadata, err := ReadYMLMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return metadata, err
}

func scalarString(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
