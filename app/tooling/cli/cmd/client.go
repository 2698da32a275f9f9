package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// client bounds every call to the node so the CLI never hangs.
var client = http.Client{Timeout: 30 * time.Second}

// get performs a GET against the node and decodes the JSON response.
func get(path string, dataRecv any) error {
	resp, err := client.Get(nodeURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decode(resp, dataRecv)
}

// post performs a POST against the node with a JSON body and decodes the
// JSON response.
func post(path string, dataSend any, dataRecv any) error {
	data, err := json.Marshal(dataSend)
	if err != nil {
		return err
	}

	resp, err := client.Post(nodeURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return decode(resp, dataRecv)
}

func decode(resp *http.Response, dataRecv any) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return fmt.Errorf("node returned status %d: %s", resp.StatusCode, string(msg))
	}

	if dataRecv == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dataRecv); err != nil {
		return errors.New("unable to decode node response: " + err.Error())
	}

	return nil
}
