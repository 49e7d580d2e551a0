package tayeb

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeCommand writes a single command as one JSONL line.
func EncodeCommand(w io.Writer, cmd Command) error {
	b, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("could not encode %q command: %w", cmd.What(), err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeJournal writes the whole journal in canonical JSONL form, one
// command per line, in admission order.
func EncodeJournal(w io.Writer, j *Journal) error {
	for _, cmd := range j.Commands() {
		if err := EncodeCommand(w, cmd); err != nil {
			return err
		}
	}
	return nil
}

// DecodeJournal reads a JSONL stream, decodes each line into the
// appropriate command struct, and returns the journal in file order.
func DecodeJournal(r io.Reader) (*Journal, error) {
	j := &Journal{}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		cmd, err := decodeCommand(line)
		if err != nil {
			return nil, err
		}
		j.commands = append(j.commands, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read journal: %w", err)
	}
	return j, nil
}

// decodeCommand identifies the command type of a single line and
// unmarshals it into the matching struct.
func decodeCommand(line []byte) (Command, error) {
	var identifier struct {
		Command CommandType `json:"command"`
	}
	if err := json.Unmarshal(line, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify command in line %q: %w", string(line), err)
	}

	var cmd Command
	var err error
	switch identifier.Command {
	case CmdInit:
		var c Init
		err = json.Unmarshal(line, &c)
		cmd = c
	case CmdRegisterAsset:
		var c RegisterAsset
		err = json.Unmarshal(line, &c)
		cmd = c
	case CmdRemoveAsset:
		var c RemoveAsset
		err = json.Unmarshal(line, &c)
		cmd = c
	case CmdDeposit:
		var c Deposit
		err = json.Unmarshal(line, &c)
		cmd = c
	case CmdCreateBasket:
		var c CreateBasket
		err = json.Unmarshal(line, &c)
		cmd = c
	case CmdCreateTemplate:
		var c CreateTemplate
		err = json.Unmarshal(line, &c)
		cmd = c
	case CmdSubscribe:
		var c Subscribe
		err = json.Unmarshal(line, &c)
		cmd = c
	case CmdInvest:
		var c Invest
		err = json.Unmarshal(line, &c)
		cmd = c
	case CmdInvestOnce:
		var c InvestOnce
		err = json.Unmarshal(line, &c)
		cmd = c
	case CmdDCACreate:
		var c DCACreate
		err = json.Unmarshal(line, &c)
		cmd = c
	case CmdDCAExecute:
		var c DCAExecute
		err = json.Unmarshal(line, &c)
		cmd = c
	case CmdDCACancel:
		var c DCACancel
		err = json.Unmarshal(line, &c)
		cmd = c
	default:
		return nil, fmt.Errorf("unknown command %q in line %q", identifier.Command, string(line))
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode %q command: %w", identifier.Command, err)
	}
	return cmd, nil
}
