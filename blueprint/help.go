package blueprint

// LongHelp describes the format of fields. It is typically used in the long
// help text.
const LongHelp = `
Fields are specified as NAME:type or NAME:type:options, where options is a
comma-separated list of key=value pairs and flags. The options cmd and value
take the rest of the string, so they may contain commas. Lists of items are
separated by "|", lists of word lists and character classes by "+".

Types and their options:

    numbers    range=A-B, fractional, digits=N
    set        items=A|B|C, ordered, distinct
    ids        length=MIN-MAX, chars=letter+number+symbol
    sequence   start=N, step=N
    strings    words=MIN-MAX, lists=L1+L2, sep=S
    emails     local=MIN-MAX, domain=MIN-MAX, lists=L, domains=L, tlds=A|B
    hexcolors
    sample     items=A|B|C, length=MIN-MAX, ordered, duplicates
    exec       cmd=COMMAND
    value      value=TEXT

All types except value accept the flag unique and retries=N, which sets how
often a value is generated again before the uniqueness check is given up
(0 means no limit).

An empty value is kept as such: sep= joins words without a separator and
digits=0 yields fractional numbers without digits after the point.

A blueprint file is a YAML document with the keys items (the number of rows),
lists (custom word lists, name to filename) and fields. Each field has a name,
a type, and its options as additional keys. Fields given with --field are
appended to the fields of the file.
`
