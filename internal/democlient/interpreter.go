package democlient

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/vimcore/internal/excmd"
	"github.com/dshills/vimcore/internal/key"
	"github.com/dshills/vimcore/internal/settings"
)

// executeLine parses and runs one ex command line reported by CommandMode.
// It implements only the subset of the ex command language SPEC_FULL
// scopes as a demo-host responsibility: :set, the :map family, and
// :q/:qa/:wq to exit. Anything else is reported as unsupported rather than
// silently ignored.
func (c *Client) executeLine(ctx context.Context, line string) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return
	}

	cursor := excmd.NewCursor(trimmed)
	cmd, ok := excmd.ParseSingleCommand(cursor)
	if !ok {
		c.statusMsg = excmd.ParseError(trimmed).Error()
		return
	}

	if c.history != nil {
		if err := c.history.Append(ctx, trimmed); err != nil {
			c.logger.Warn("history: %s", err)
		}
	}
	c.registers.SetLastCommand(trimmed)

	switch cmd.Kind {
	case excmd.CmdSet:
		c.runSet(cmd)
	case excmd.CmdMapKeys:
		c.runMap(cmd)
	case excmd.CmdUnmapKeys:
		c.runUnmap(cmd)
	case excmd.CmdClearKeyMap:
		c.runClearMap(cmd)
	case excmd.CmdDisplayKeyMap:
		c.runDisplayMap(cmd)
	case excmd.CmdQuit, excmd.CmdQuitAll, excmd.CmdQuitWithWrite:
		c.quit = true
	default:
		c.statusMsg = fmt.Sprintf("E492: not supported in this demo: %s", trimmed)
	}
}

func (c *Client) runSet(cmd *excmd.Command) {
	items, _ := cmd.Args["items"].([]excmd.SetItem)
	for _, item := range items {
		switch item.Kind {
		case excmd.SetResetAllToDefault:
			c.settings = settings.Default()
			c.engine.SetDisableCommandKey(c.settings.DisableCommand, true)
		case excmd.SetDisplayAllButTerminal, excmd.SetDisplayAllTerminal:
			c.statusMsg = "set: listing all options is not supported in this demo"
		case excmd.SetToggleSetting:
			c.applySet(item.Name, "false")
		case excmd.SetInvertSetting:
			c.applySet(item.Name, strconv.FormatBool(!c.boolSetting(item.Name)))
		case excmd.SetAssignSetting:
			c.applySet(item.Name, item.Value)
		case excmd.SetDisplaySetting:
			c.statusMsg = fmt.Sprintf("%s=%s", item.Name, c.describeSetting(item.Name))
		case excmd.SetAddSetting, excmd.SetMultiplySetting, excmd.SetSubtractSetting:
			c.statusMsg = fmt.Sprintf("set: %s does not support +=/^=/-= in this demo", item.Name)
		}
	}
}

func (c *Client) applySet(name, value string) {
	updated, err := c.settings.SetString(name, value)
	if err != nil {
		c.statusMsg = err.Error()
		return
	}
	c.settings = updated
	c.engine.SetDisableCommandKey(c.settings.DisableCommand, true)
}

func (c *Client) boolSetting(name string) bool {
	switch name {
	case "magic":
		return c.settings.Magic
	case "nomagic":
		return c.settings.Nomagic
	case "hlsearch":
		return c.settings.HlSearch
	case "ignorecase":
		return c.settings.IgnoreCase
	case "smartcase":
		return c.settings.Smartcase
	default:
		return c.settings.Extra[name] == "true"
	}
}

func (c *Client) describeSetting(name string) string {
	if name == "disableCommand" {
		return c.settings.DisableCommand.VimString()
	}
	if v, ok := c.settings.Extra[name]; ok {
		return v
	}
	return strconv.FormatBool(c.boolSetting(name))
}

func (c *Client) runMap(cmd *excmd.Command) {
	lhs, _ := cmd.Args["lhs"].(string)
	rhs, _ := cmd.Args["rhs"].(string)
	modes, _ := cmd.Args["modes"].([]key.RemapMode)
	allowRemap, _ := cmd.Args["allowRemap"].(bool)

	lhsSeq, err := key.ParseSequence(lhs)
	if err != nil {
		c.statusMsg = fmt.Sprintf("E474: invalid lhs: %s", lhs)
		return
	}
	rhsSeq, err := key.ParseSequence(rhs)
	if err != nil {
		c.statusMsg = fmt.Sprintf("E474: invalid rhs: %s", rhs)
		return
	}

	noremap := !allowRemap
	for _, m := range modes {
		c.table.Map(m, lhsSeq, rhsSeq, noremap)
		if c.keymaps != nil {
			if err := c.keymaps.Set(m, lhs, rhs, noremap); err != nil {
				c.logger.Warn("keymapstore: %s", err)
			}
		}
	}
}

func (c *Client) runUnmap(cmd *excmd.Command) {
	lhs, _ := cmd.Args["lhs"].(string)
	modes, _ := cmd.Args["modes"].([]key.RemapMode)

	lhsSeq, err := key.ParseSequence(lhs)
	if err != nil {
		c.statusMsg = fmt.Sprintf("E474: invalid lhs: %s", lhs)
		return
	}
	for _, m := range modes {
		c.table.Unmap(m, lhsSeq)
		if c.keymaps != nil {
			if err := c.keymaps.Delete(m, lhs); err != nil {
				c.logger.Warn("keymapstore: %s", err)
			}
		}
	}
}

func (c *Client) runClearMap(cmd *excmd.Command) {
	modes, _ := cmd.Args["modes"].([]key.RemapMode)
	for _, m := range modes {
		c.table.Clear(m)
		if c.keymaps != nil {
			if err := c.keymaps.Clear(m); err != nil {
				c.logger.Warn("keymapstore: %s", err)
			}
		}
	}
}

func (c *Client) runDisplayMap(cmd *excmd.Command) {
	modes, _ := cmd.Args["modes"].([]key.RemapMode)
	if c.keymaps == nil || len(modes) == 0 {
		c.statusMsg = "no persisted mappings"
		return
	}
	entries, err := c.keymaps.All(modes[0])
	if err != nil {
		c.statusMsg = err.Error()
		return
	}
	if len(entries) == 0 {
		c.statusMsg = fmt.Sprintf("no mappings for %s", modes[0].String())
		return
	}
	var b strings.Builder
	for lhs, entry := range entries {
		fmt.Fprintf(&b, "%s -> %s  ", lhs, entry.Rhs)
	}
	c.statusMsg = b.String()
}
